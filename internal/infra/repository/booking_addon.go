package repository

import (
	"context"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	"storezee/internal/infra/repository/converter"
	sqlc "storezee/internal/infra/sqlc/generated"
)

type BookingAddonWriteQueries interface {
	InsertBookingAddon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingAddonParams) error
}

type BookingAddonRepository struct {
	queries BookingAddonWriteQueries
	db      sqlc.DBTX
}

func NewBookingAddonRepository(queries BookingAddonWriteQueries, db sqlc.DBTX) *BookingAddonRepository {
	return &BookingAddonRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingAddonRepository) Create(ctx context.Context, a *booking.AddonAssociation) error {
	if err := r.queries.InsertBookingAddon(ctx, r.db, converter.AddonAssociationToInsertParams(a)); err != nil {
		return infra.WrapRepoErr("failed to insert booking add-on", err)
	}
	return nil
}
