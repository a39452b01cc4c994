//go:build unit

package pgconv

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storezee/internal/pkg/errs"
)

func TestMinorUnitsFromNumeric(t *testing.T) {
	tests := []struct {
		name    string
		input   pgtype.Numeric
		want    int64
		wantErr error
	}{
		{name: "null is zero", input: pgtype.Numeric{}, want: 0},
		{name: "two decimals", input: pgtype.Numeric{Int: big.NewInt(2050), Exp: -2, Valid: true}, want: 2050},
		{name: "integer value", input: pgtype.Numeric{Int: big.NewInt(20), Exp: 0, Valid: true}, want: 2000},
		{name: "positive exponent", input: pgtype.Numeric{Int: big.NewInt(3), Exp: 2, Valid: true}, want: 30000},
		{name: "rounds half up", input: pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true}, want: 1235},
		{name: "rounds down", input: pgtype.Numeric{Int: big.NewInt(12344), Exp: -3, Valid: true}, want: 1234},
		{name: "negative rounds away from zero", input: pgtype.Numeric{Int: big.NewInt(-12345), Exp: -3, Valid: true}, want: -1235},
		{name: "nan rejected", input: pgtype.Numeric{NaN: true, Valid: true}, wantErr: ErrInvalidNumericValue},
		{
			name:    "overflow rejected",
			input:   pgtype.Numeric{Int: new(big.Int).Lsh(big.NewInt(1), 80), Exp: 0, Valid: true},
			wantErr: ErrNumericOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinorUnitsFromNumeric(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericFromMinorUnits_RoundTrip(t *testing.T) {
	n := NumericFromMinorUnits(12000)
	assert.True(t, n.Valid)
	assert.Equal(t, int32(-2), n.Exp)

	got, err := MinorUnitsFromNumeric(n)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), got)
}

func TestNullableTextToPgtype(t *testing.T) {
	assert.False(t, NullableTextToPgtype("").Valid)
	assert.Equal(t, pgtype.Text{String: "AB12", Valid: true}, NullableTextToPgtype("AB12"))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(pgx.ErrNoRows, "lookup")))
	assert.False(t, IsNoRows(assert.AnError))
}
