package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the stored token
	// or the login credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrBadRequest is returned when the server rejects the submitted data.
	ErrBadRequest = errors.New("invalid request data")

	// ErrNoPredictionYet is returned when a narrative is requested before
	// any prediction was run.
	ErrNoPredictionYet = errors.New("no prediction computed yet")

	// ErrServerFailure is returned for any other non-success response.
	ErrServerFailure = errors.New("server failure")
)
