package service

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/mailer"
	"github.com/healthtrack-app/healthtrack/internal/store"
	"github.com/healthtrack-app/healthtrack/models"
)

// dashboardService serves stored prediction history and report delivery.
type dashboardService struct {
	predictions store.PredictionRepository
	mailer      mailer.Mailer
	logger      *logger.Logger
}

// NewDashboardService wires the dashboard over the prediction repository and
// the report mailer.
func NewDashboardService(predictions store.PredictionRepository, mailer mailer.Mailer, logger *logger.Logger) DashboardService {
	return &dashboardService{
		predictions: predictions,
		mailer:      mailer,
		logger:      logger,
	}
}

// History returns the user's stored predictions, newest first.
func (d *dashboardService) History(ctx context.Context, userID string) ([]models.PredictionRecord, error) {
	log := logger.FromContext(ctx)

	records, err := d.predictions.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("unique_id", userID).Msg("history lookup failed")
		return nil, fmt.Errorf("history lookup failed: %w", err)
	}

	return records, nil
}

// Users lists every account with at least one stored prediction.
func (d *dashboardService) Users(ctx context.Context) ([]models.DashboardUser, error) {
	log := logger.FromContext(ctx)

	users, err := d.predictions.ListDashboardUsers(ctx)
	if err != nil {
		log.Err(err).Msg("dashboard user listing failed")
		return nil, fmt.Errorf("dashboard user listing failed: %w", err)
	}

	return users, nil
}

// EmailReport renders the user's history as a plaintext table and mails it.
//
// Returns ErrNoHistory when the user has no stored predictions and a wrapped
// mailer error when delivery fails.
func (d *dashboardService) EmailReport(ctx context.Context, userID, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	records, err := d.predictions.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("unique_id", userID).Msg("history lookup for report failed")
		return fmt.Errorf("history lookup for report failed: %w", err)
	}
	if len(records) == 0 {
		return ErrNoHistory
	}

	body := renderReport(userID, records)
	subject := fmt.Sprintf("Diabetes risk dashboard for %s", userID)

	if err = d.mailer.Send(email, subject, body); err != nil {
		log.Err(err).Str("unique_id", userID).Str("email", email).Msg("report delivery failed")
		return err
	}
	log.Info().Str("unique_id", userID).Str("email", email).Msg("dashboard report sent")

	return nil
}

// renderReport builds the plaintext dashboard table, newest record first.
func renderReport(userID string, records []models.PredictionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prediction history for %s\n\n", userID)

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPREDICTION\tPROBABILITY\tBMI\tGEN HEALTH")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.1f\t%.0f\n",
			rec.Date, rec.Prediction, rec.Probability*100, rec.Features.BMI, rec.Features.GenHlth)
	}
	w.Flush()

	b.WriteString("\nThis report was generated automatically; it is not a medical diagnosis.\n")

	return b.String()
}
