package errs

import "errors"

// Failure classes of the booking workflow. Infrastructure packages mark their
// errors with these so callers can classify without importing each other.
var (
	// Bad input; reported before any write happens.
	ErrValidation = errors.New("validation error")

	// Object storage failures. Fatal for item photos, absorbed for identity documents.
	ErrStorage = errors.New("storage error")

	// Any database failure inside the booking transaction.
	ErrPersistence = errors.New("persistence error")

	// Outbound email failures. Never surfaced to callers.
	ErrNotification = errors.New("notification error")

	// Request deadline exceeded while the transaction was open.
	ErrTimeout = errors.New("workflow timeout")
)
