// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/healthtrack-app/healthtrack/models"
)

// uniqueIDRetries bounds how often a lost allocation race is retried before
// the error is surfaced to the caller.
const uniqueIDRetries = 3

// UserSQLRepository implements UserRepository on the shared database handle.
type UserSQLRepository struct {
	db *DB
}

// NewUserRepository returns a UserRepository backed by db.
func NewUserRepository(db *DB) *UserSQLRepository {
	return &UserSQLRepository{db: db}
}

// CreateUser allocates the next surname-scoped unique_id and inserts the
// account in one transaction. Two concurrent first logins with the same
// surname can allocate the same id; the loser of that race hits the unique
// constraint and the whole allocation is retried. A violation can also come
// from the email constraint when the same address registers twice at once; in
// that case the account already exists and is returned as-is.
func (r *UserSQLRepository) CreateUser(ctx context.Context, name, email string) (models.User, error) {
	log := r.db.logger.GetChildLogger("func", "CreateUser")

	var lastErr error
	for attempt := 0; attempt < uniqueIDRetries; attempt++ {
		user, err := r.createUserOnce(ctx, name, email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, ErrUniqueIDTaken) {
			return models.User{}, err
		}

		existing, findErr := r.FindUserByEmail(ctx, email)
		if findErr == nil {
			log.Warn().Str("unique_id", existing.UniqueID).Msg("email registered concurrently, returning existing account")
			return existing, nil
		}
		if !errors.Is(findErr, ErrNoUserWasFound) {
			return models.User{}, findErr
		}

		log.Warn().Int("attempt", attempt+1).Msg("unique_id allocation race lost, retrying")
		lastErr = err
	}

	return models.User{}, lastErr
}

func (r *UserSQLRepository) createUserOnce(ctx context.Context, name, email string) (models.User, error) {
	log := r.db.logger.GetChildLogger("func", "createUserOnce")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.User{}, errors.Join(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	uniqueID, err := r.nextUniqueID(ctx, tx, name)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := r.db.Builder().
		Insert(models.User{}.TableName()).
		Columns("name", "email", "unique_id").
		Values(name, email, uniqueID).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: %s", ErrUniqueIDTaken, uniqueID)
		}
		log.Err(err).Msg("error inserting user")
		return models.User{}, errors.Join(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return models.User{}, errors.Join(ErrCommitingTransaction, err)
	}

	return models.User{Name: name, Email: email, UniqueID: uniqueID}, nil
}

// nextUniqueID derives the account's public identifier: the lowercased
// surname followed by one plus the highest numeric suffix already present for
// that surname. The first alidoust becomes alidoust1, the next alidoust2.
func (r *UserSQLRepository) nextUniqueID(ctx context.Context, tx *sql.Tx, name string) (string, error) {
	log := r.db.logger.GetChildLogger("func", "nextUniqueID")

	surname := surnameKey(name)

	query, args, err := r.db.Builder().
		Select("unique_id").
		From(models.User{}.TableName()).
		Where("unique_id LIKE ?", surname+"%").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return "", errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying existing unique_ids")
		return "", errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	maxSuffix := 0
	for rows.Next() {
		var existing string
		if err = rows.Scan(&existing); err != nil {
			log.Err(err).Msg("error scanning unique_id")
			return "", errors.Join(ErrScanningRows, err)
		}
		suffix, convErr := strconv.Atoi(strings.TrimPrefix(existing, surname))
		if convErr != nil {
			continue
		}
		if suffix > maxSuffix {
			maxSuffix = suffix
		}
	}
	if err = rows.Err(); err != nil {
		return "", errors.Join(ErrScanningRows, err)
	}

	return surname + strconv.Itoa(maxSuffix+1), nil
}

// surnameKey lowercases the last whitespace-separated word of the full name.
func surnameKey(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "user"
	}
	return strings.ToLower(fields[len(fields)-1])
}

// FindUserByEmail returns the account registered under email.
func (r *UserSQLRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// FindUserByUniqueID returns the account registered under uniqueID.
func (r *UserSQLRepository) FindUserByUniqueID(ctx context.Context, uniqueID string) (models.User, error) {
	return r.findUserBy(ctx, "unique_id", uniqueID)
}

func (r *UserSQLRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := r.db.logger.GetChildLogger("func", "findUserBy")

	query, args, err := r.db.Builder().
		Select("id", "name", "email", "unique_id").
		From(models.User{}.TableName()).
		Where(column+" = ?", value).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building sql query")
		return models.User{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Name, &user.Email, &user.UniqueID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("column", column).Msg("error scanning user")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return user, nil
}
