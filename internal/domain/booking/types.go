package booking

import "errors"

var (
	ErrEmptyFullName      = errors.New("full name cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPhone       = errors.New("phone must be at least 10 characters")
	ErrInvalidLatitude    = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude   = errors.New("longitude must be between -180 and 180")
	ErrInvalidDuration    = errors.New("duration must be between 1 and 720 hours")
	ErrNegativeMoney      = errors.New("money cannot be negative")
	ErrEmptyLocation      = errors.New("storage location cannot be empty")
	ErrMissingStorageUnit = errors.New("storage unit is required")
	ErrMissingCustomer    = errors.New("customer is required")
)

// Fixed values written by the creation workflow.
const (
	RoleUser             = "user"
	KindHourly           = "Hourly"
	StatusConfirmed      = "confirmed"
	PaymentStatusPending = "pending"
	UpdatedBySystem      = "System"
)

const (
	MinDurationHours = 1
	MaxDurationHours = 720

	MinPhoneLength = 10
)
