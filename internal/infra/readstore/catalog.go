package readstore

import (
	"context"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/pkg/pgconv"
	"storezee/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	FindActiveAddonByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.FindActiveAddonByIDRow, error)
	ListActiveAddons(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveAddonsRow, error)
	ListStorageUnits(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListStorageUnitsRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// Addon is the command-side view of an active add-on with its price in minor units.
type Addon struct {
	ID        uuid.UUID
	Name      string
	UnitPrice booking.Money
}

func (r *CatalogReadStore) FindActiveAddon(ctx context.Context, token string) (*Addon, error) {
	row, err := r.queries.FindActiveAddonByID(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("addon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find addon", err)
	}

	price, err := moneyFromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid addon price", err, infra.KindDBFailure)
	}

	return &Addon{ID: row.ID, Name: row.Name, UnitPrice: price}, nil
}

func (r *CatalogReadStore) ListActiveAddons(ctx context.Context) ([]*queries.AddonView, error) {
	rows, err := r.queries.ListActiveAddons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addons", err)
	}

	views := make([]*queries.AddonView, 0, len(rows))
	for _, row := range rows {
		price, err := moneyFromNumeric(row.BasePrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid addon price", err, infra.KindDBFailure)
		}
		views = append(views, &queries.AddonView{
			ID:          row.ID,
			Name:        row.Name,
			BasePrice:   price.Decimal(),
			Description: row.Description,
		})
	}
	return views, nil
}

func (r *CatalogReadStore) ListStorageUnits(ctx context.Context) ([]*queries.StorageUnitView, error) {
	rows, err := r.queries.ListStorageUnits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list storage units", err)
	}

	views := make([]*queries.StorageUnitView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.StorageUnitView{ID: row.ID, Title: row.Title})
	}
	return views, nil
}

func moneyFromNumeric(n pgtype.Numeric) (booking.Money, error) {
	minor, err := pgconv.MinorUnitsFromNumeric(n)
	if err != nil {
		return booking.Money{}, err
	}
	return booking.NewMoney(minor)
}
