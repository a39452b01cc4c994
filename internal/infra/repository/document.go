package repository

import (
	"context"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	"storezee/internal/infra/repository/converter"
	sqlc "storezee/internal/infra/sqlc/generated"
)

type DocumentWriteQueries interface {
	NextUserDocumentID(ctx context.Context, db sqlc.DBTX) (int64, error)
	InsertUserDocument(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUserDocumentParams) error
}

type DocumentRepository struct {
	queries DocumentWriteQueries
	db      sqlc.DBTX
}

func NewDocumentRepository(queries DocumentWriteQueries, db sqlc.DBTX) *DocumentRepository {
	return &DocumentRepository{
		queries: queries,
		db:      db,
	}
}

// Create draws the id from users_userdocument_id_seq before inserting.
func (r *DocumentRepository) Create(ctx context.Context, d *booking.IdentityDocument) (int64, error) {
	id, err := r.queries.NextUserDocumentID(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate document id", err, infra.KindDBFailure)
	}

	if err := r.queries.InsertUserDocument(ctx, r.db, converter.DocumentToInsertParams(id, d)); err != nil {
		return 0, infra.WrapRepoErr("failed to insert identity document", err)
	}
	return id, nil
}
