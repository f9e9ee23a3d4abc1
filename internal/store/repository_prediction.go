// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/healthtrack-app/healthtrack/models"
)

// PredictionSQLRepository implements PredictionRepository on the shared
// database handle. Feature vectors are stored as a JSON document so both
// supported dialects use the same column type.
type PredictionSQLRepository struct {
	db *DB
}

// NewPredictionRepository returns a PredictionRepository backed by db.
func NewPredictionRepository(db *DB) *PredictionSQLRepository {
	return &PredictionSQLRepository{db: db}
}

// UpsertDaily stores rec under (rec.UserID, rec.Date). An existing same-day
// record is overwritten in place, otherwise a new row is inserted. The check
// and the write share one transaction. Every failure wraps
// ErrStoreUnavailable so callers can degrade to a warning instead of losing
// the computed prediction.
func (r *PredictionSQLRepository) UpsertDaily(ctx context.Context, rec models.PredictionRecord) error {
	log := r.db.logger.GetChildLogger("func", "UpsertDaily")

	featuresJSON, err := json.Marshal(rec.Features)
	if err != nil {
		log.Err(err).Msg("error marshaling features")
		return errors.Join(ErrStoreUnavailable, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return errors.Join(ErrStoreUnavailable, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	existingID, err := r.findSameDayID(ctx, tx, rec.UserID, rec.Date)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	if existingID != 0 {
		err = r.updateExisting(ctx, tx, existingID, rec, featuresJSON)
	} else {
		err = r.insertNew(ctx, tx, rec, featuresJSON)
	}
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return errors.Join(ErrStoreUnavailable, ErrCommitingTransaction, err)
	}

	return nil
}

// findSameDayID returns the id of the user's record for the given date, or 0
// when none exists yet.
func (r *PredictionSQLRepository) findSameDayID(ctx context.Context, tx *sql.Tx, userID, date string) (int64, error) {
	log := r.db.logger.GetChildLogger("func", "findSameDayID")

	query, args, err := r.db.Builder().
		Select("id").
		From(models.PredictionRecord{}.TableName()).
		Where("user_id = ? AND date = ?", userID, date).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).Msg("error scanning same-day record id")
		return 0, errors.Join(ErrScanningRow, err)
	}

	return id, nil
}

func (r *PredictionSQLRepository) updateExisting(ctx context.Context, tx *sql.Tx, id int64, rec models.PredictionRecord, featuresJSON []byte) error {
	log := r.db.logger.GetChildLogger("func", "updateExisting")

	query, args, err := r.db.Builder().
		Update(models.PredictionRecord{}.TableName()).
		Set("features", featuresJSON).
		Set("prediction", rec.Prediction).
		Set("probability", rec.Probability).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("error updating prediction record")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

func (r *PredictionSQLRepository) insertNew(ctx context.Context, tx *sql.Tx, rec models.PredictionRecord, featuresJSON []byte) error {
	log := r.db.logger.GetChildLogger("func", "insertNew")

	query, args, err := r.db.Builder().
		Insert(models.PredictionRecord{}.TableName()).
		Columns("user_id", "date", "features", "prediction", "probability").
		Values(rec.UserID, rec.Date, featuresJSON, rec.Prediction, rec.Probability).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("error inserting prediction record")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// ListByUser returns the user's full prediction history, newest first.
func (r *PredictionSQLRepository) ListByUser(ctx context.Context, uniqueID string) ([]models.PredictionRecord, error) {
	log := r.db.logger.GetChildLogger("func", "ListByUser")

	query, args, err := r.db.Builder().
		Select("id", "user_id", "date", "features", "prediction", "probability").
		From(models.PredictionRecord{}.TableName()).
		Where("user_id = ?", uniqueID).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying prediction history")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.PredictionRecord
	for rows.Next() {
		var (
			rec          models.PredictionRecord
			featuresJSON []byte
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &featuresJSON, &rec.Prediction, &rec.Probability); err != nil {
			log.Err(err).Msg("error scanning prediction record")
			return nil, errors.Join(ErrScanningRows, err)
		}
		if err = json.Unmarshal(featuresJSON, &rec.Features); err != nil {
			log.Err(err).Int64("record_id", rec.ID).Msg("error unmarshaling features")
			return nil, errors.Join(ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return records, nil
}

// ListDashboardUsers returns every user with at least one stored prediction,
// joined with the demographics of their latest record.
func (r *PredictionSQLRepository) ListDashboardUsers(ctx context.Context) ([]models.DashboardUser, error) {
	log := r.db.logger.GetChildLogger("func", "ListDashboardUsers")

	query, args, err := r.db.Builder().
		Select("u.unique_id", "u.email", "p.features").
		From(models.PredictionRecord{}.TableName()+" p").
		Join(models.User{}.TableName()+" u ON u.unique_id = p.user_id").
		Where("p.date = (SELECT MAX(date) FROM predictions WHERE user_id = p.user_id)").
		OrderBy("u.unique_id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying dashboard users")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.DashboardUser
	for rows.Next() {
		var (
			du           models.DashboardUser
			featuresJSON []byte
			features     models.FeatureVector
		)
		if err = rows.Scan(&du.UniqueID, &du.Email, &featuresJSON); err != nil {
			log.Err(err).Msg("error scanning dashboard user")
			return nil, errors.Join(ErrScanningRows, err)
		}
		if err = json.Unmarshal(featuresJSON, &features); err != nil {
			log.Err(err).Str("unique_id", du.UniqueID).Msg("error unmarshaling features")
			return nil, errors.Join(ErrScanningRows, err)
		}
		du.Sex = features.Sex
		du.Age = features.Age
		du.Education = features.Education
		users = append(users, du)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return users, nil
}
