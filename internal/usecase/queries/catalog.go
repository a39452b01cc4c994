package queries

//go:generate mockgen -destination=../../testutil/mock/queries/queries_mock.go -package=queriesmock storezee/internal/usecase/queries CatalogQueries,CustomerQueries

import (
	"context"
)

type CatalogReadStore interface {
	ListActiveAddons(ctx context.Context) ([]*AddonView, error)
	ListStorageUnits(ctx context.Context) ([]*StorageUnitView, error)
}

type CatalogQueries interface {
	ListAddons(ctx context.Context) ([]*AddonView, error)
	ListStorageUnits(ctx context.Context) ([]*StorageUnitView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListAddons(ctx context.Context) ([]*AddonView, error) {
	return q.readStore.ListActiveAddons(ctx)
}

func (q *catalogQueriesImpl) ListStorageUnits(ctx context.Context) ([]*StorageUnitView, error) {
	return q.readStore.ListStorageUnits(ctx)
}
