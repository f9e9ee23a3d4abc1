package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/service"
	"github.com/healthtrack-app/healthtrack/internal/store"
	"github.com/healthtrack-app/healthtrack/internal/utils"
	"github.com/healthtrack-app/healthtrack/models"
)

// loginResponse couples the resolved account with the issued token so a
// first-time user learns their allocated unique_id immediately.
type loginResponse struct {
	models.User
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			http.Error(w, "unknown unique_id", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("unique_id", user.UniqueID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, loginResponse{User: user, Token: token.String()}, http.StatusOK)
}
