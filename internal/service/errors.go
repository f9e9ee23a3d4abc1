package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrNoPredictionYet is returned when a narrative or explanation is
	// requested before any prediction was run in the current session.
	ErrNoPredictionYet = errors.New("no prediction computed in this session")

	// ErrNoHistory is returned when a dashboard report is requested for a
	// user without any stored predictions.
	ErrNoHistory = errors.New("no prediction history")
)
