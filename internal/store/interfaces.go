package store

import (
	"context"

	"github.com/healthtrack-app/healthtrack/models"
)

// UserRepository persists application accounts. Accounts are created once at
// first login and never mutated afterwards.
type UserRepository interface {
	// CreateUser allocates a surname-scoped unique_id for the given name
	// and inserts the account. The allocation and the insert run in one
	// transaction; a lost race on the unique_id is retried internally.
	CreateUser(ctx context.Context, name, email string) (models.User, error)

	// FindUserByEmail returns the account with the given email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByUniqueID returns the account with the given unique_id, or
	// ErrNoUserWasFound.
	FindUserByUniqueID(ctx context.Context, uniqueID string) (models.User, error)
}

// PredictionRepository persists risk assessments keyed by (user, day).
type PredictionRepository interface {
	// UpsertDaily stores the record under (rec.UserID, rec.Date),
	// overwriting all fields of an existing same-day record in place.
	// Any I/O failure wraps ErrStoreUnavailable.
	UpsertDaily(ctx context.Context, rec models.PredictionRecord) error

	// ListByUser returns the user's full prediction history, newest first.
	ListByUser(ctx context.Context, uniqueID string) ([]models.PredictionRecord, error)

	// ListDashboardUsers returns every user with at least one stored
	// prediction, with the demographics of their latest record.
	ListDashboardUsers(ctx context.Context) ([]models.DashboardUser, error)
}
