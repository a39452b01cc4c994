package repository

import (
	"context"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	"storezee/internal/infra/repository/converter"
	sqlc "storezee/internal/infra/sqlc/generated"
)

type CustomerWriteQueries interface {
	InsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCustomerParams) error
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *booking.Customer) error {
	if err := r.queries.InsertCustomer(ctx, r.db, converter.CustomerToInsertParams(c)); err != nil {
		return infra.WrapRepoErr("failed to insert customer", err)
	}
	return nil
}
