// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/healthtrack-app/healthtrack/internal/config"
	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/internal/store"
	"github.com/healthtrack-app/healthtrack/internal/utils"
	"github.com/healthtrack-app/healthtrack/models"
)

// authService is the concrete implementation of AuthService.
// Accounts carry no password: identity is either a name+email pair (account
// created on first use) or a previously issued unique_id. The JWT subject is
// always the account unique_id.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login resolves the request to an account and issues a signed token.
//
// Two identification modes are supported and exactly one must be used:
//   - unique_id only: the account must already exist.
//   - name+email: resolves to the existing account registered under that
//     email, or creates a new one with a freshly allocated unique_id.
//
// Returns ErrInvalidDataProvided when neither or both modes are used, or a
// wrapped storage error (e.g. store.ErrNoUserWasFound for an unknown
// unique_id).
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	byUniqueID := req.UniqueID != ""
	byNameEmail := req.Name != "" && req.Email != ""
	if byUniqueID == byNameEmail {
		log.Error().Any("request", req).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	var (
		user models.User
		err  error
	)
	if byUniqueID {
		user, err = a.userRepository.FindUserByUniqueID(ctx, req.UniqueID)
		if err != nil {
			log.Err(err).Str("unique_id", req.UniqueID).Msg("user search by unique_id failed")
			return models.User{}, models.Token{}, fmt.Errorf("user search by unique_id failed: %w", err)
		}
	} else {
		user, err = a.resolveByNameEmail(ctx, req.Name, req.Email)
		if err != nil {
			return models.User{}, models.Token{}, err
		}
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UniqueID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("unique_id", user.UniqueID).Msg("token generation failed")
		return models.User{}, models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return user, token, nil
}

// resolveByNameEmail returns the account registered under email, creating a
// new one when the email is unknown.
func (a *authService) resolveByNameEmail(ctx context.Context, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	user, err = a.userRepository.CreateUser(ctx, name, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Str("unique_id", user.UniqueID).Msg("new account created")

	return user, nil
}

// ValidateToken verifies the compact token string.
//
// Returns ErrTokenIsExpired for an expired token and ErrInvalidDataProvided
// for any other validation failure.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("token validation failed")
		return models.Token{}, ErrInvalidDataProvided
	}

	return token, nil
}
