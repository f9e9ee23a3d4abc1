package http

import (
	"errors"
	"net/http"

	"github.com/healthtrack-app/healthtrack/internal/explain"
	"github.com/healthtrack-app/healthtrack/internal/features"
	"github.com/healthtrack-app/healthtrack/internal/llm"
	"github.com/healthtrack-app/healthtrack/internal/mailer"
	"github.com/healthtrack-app/healthtrack/internal/service"
	"github.com/healthtrack-app/healthtrack/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrNoPredictionYet:     http.StatusConflict,
	service.ErrNoHistory:           http.StatusNotFound,

	features.ErrValidation: http.StatusBadRequest,

	llm.ErrNarrativeService: http.StatusBadGateway,
	mailer.ErrMailDelivery:  http.StatusBadGateway,

	explain.ErrAttributionMismatch: http.StatusInternalServerError,

	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUniqueIDTaken:      http.StatusConflict,
	store.ErrStoreUnavailable:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
