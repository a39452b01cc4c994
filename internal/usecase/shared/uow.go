package shared

//go:generate mockgen -source=uow.go -destination=../../testutil/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"storezee/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one pooled session, one transaction, retried on serialization failure
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the open transaction.
type Tx interface {
	Customers() CustomerRepository
	Documents() DocumentRepository
	Bookings() BookingRepository
	BookingAddons() BookingAddonRepository
	Reads() CommandReads
}

type CommandReads interface {
	AddonByID(ctx context.Context, token string) (*AddonSnapshot, error)
	CustomerByPhone(ctx context.Context, phone string) (*CustomerSnapshot, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *booking.Customer) error
}

type DocumentRepository interface {
	Create(ctx context.Context, d *booking.IdentityDocument) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}

type BookingAddonRepository interface {
	Create(ctx context.Context, a *booking.AddonAssociation) error
}
