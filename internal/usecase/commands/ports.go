package commands

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"storezee/internal/usecase/notify"
)

// ObjectStore makes a single attempt per call; the workflow decides whether a failure is fatal.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NotificationDispatcher must not block and never reports delivery failures.
type NotificationDispatcher interface {
	Dispatch(job notify.BookingConfirmation)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, files BookingFiles) (*CreateBookingResult, error)
}
