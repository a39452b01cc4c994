//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		kind  []RepositoryErrorKind
		want  RepositoryErrorKind
		cause error
	}{
		{name: "plain error is db failure", err: errors.New("boom"), want: KindDBFailure},
		{name: "no rows is not found", err: pgx.ErrNoRows, want: KindNotFound, cause: pgx.ErrNoRows},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, IsKind(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), "op failed")
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, IsKind(errors.New("x"), KindDBFailure))
}
