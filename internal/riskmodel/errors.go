package riskmodel

import "errors"

var (
	// ErrModelUnavailable is returned when the model artifact cannot be
	// loaded or fails validation. This error is fatal at startup: the
	// process cannot serve predictions without the classifier and scaler.
	ErrModelUnavailable = errors.New("model artifact unavailable")

	// ErrBadVector is returned by Predict when the input vector width does
	// not match the artifact's feature schema.
	ErrBadVector = errors.New("feature vector does not match model schema")
)
