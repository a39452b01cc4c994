package notify

import (
	"context"
	"time"

	"storezee/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingConfirmation carries the committed booking facts the customer is told about.
type BookingConfirmation struct {
	BookingID   uuid.UUID
	BookingCode string
	CustomerID  uuid.UUID
	FullName    string
	Email       string
	Phone       string
	Amount      booking.Money
	BookedAt    time.Time
}

type Sender interface {
	Send(ctx context.Context, c BookingConfirmation) error
}

// DeadLetter is a confirmation that could not be delivered.
type DeadLetter struct {
	Confirmation BookingConfirmation
	Reason       string
	Attempts     int
	FailedAt     time.Time
}

type DeadLetterStore interface {
	Put(ctx context.Context, dl DeadLetter) error
}
