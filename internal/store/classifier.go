package store

// ErrorClassificator translates driver-specific errors into portable
// constraint classifications so repositories can stay dialect-agnostic.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a unique or
	// primary-key constraint violation.
	IsUniqueViolation(err error) bool
}
