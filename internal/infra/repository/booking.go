package repository

import (
	"context"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	"storezee/internal/infra/repository/converter"
	sqlc "storezee/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertStorageBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertStorageBookingParams) (uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	params, err := converter.BookingToInsertParams(b)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build booking row", err, infra.KindDBFailure)
	}

	id, err := r.queries.InsertStorageBooking(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}
