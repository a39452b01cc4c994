package readstore

import (
	"context"

	"storezee/internal/infra"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/pkg/pgconv"
	"storezee/internal/usecase/queries"
)

type CustomerReadQueries interface {
	FindCustomerByPhone(ctx context.Context, db sqlc.DBTX, phone string) (sqlc.FindCustomerByPhoneRow, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByPhone(ctx context.Context, phone string) (*queries.CustomerRoleView, error) {
	row, err := r.queries.FindCustomerByPhone(ctx, r.db, phone)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by phone", err)
	}

	return &queries.CustomerRoleView{
		ID:             row.ID,
		FullName:       row.FullName,
		Email:          row.Email,
		Phone:          row.Phone,
		Role:           row.Role,
		ProfilePicture: row.ProfilePicture,
	}, nil
}
