package queries

import (
	"context"
	"strings"

	"storezee/internal/infra"
	"storezee/internal/pkg/errs"
)

var (
	ErrCustomerNotFound = errs.New("user not found")
	ErrPhoneRequired    = errs.New("phone is required")
)

type CustomerReadStore interface {
	FindByPhone(ctx context.Context, phone string) (*CustomerRoleView, error)
}

type CustomerQueries interface {
	GetRoleByPhone(ctx context.Context, phone string) (*CustomerRoleView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

// GetRoleByPhone returns the most recently created customer for the phone.
func (q *customerQueriesImpl) GetRoleByPhone(ctx context.Context, phone string) (*CustomerRoleView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	view, err := q.readStore.FindByPhone(ctx, phone)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}
