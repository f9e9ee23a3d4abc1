package explain

import "errors"

// ErrAttributionMismatch is returned when the computed attribution list does
// not line up 1:1 with the feature vector. This is an internal-consistency
// failure: the explanation for that request is aborted rather than silently
// truncated or padded, but the prediction itself remains valid.
var ErrAttributionMismatch = errors.New("attribution length does not match feature vector")
