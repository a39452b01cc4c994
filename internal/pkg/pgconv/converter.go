package pgconv

import (
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Monetary columns are NUMERIC with two fractional digits; Go code carries them as minor units.
const minorUnitExp = -2

var (
	ErrInvalidNumericValue = errors.New("invalid numeric value")
	ErrNumericOverflow     = errors.New("numeric value overflows int64 minor units")
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func TextToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// NullableTextToPgtype maps the empty string to SQL NULL.
func NullableTextToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func Float8PtrToPgtype(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func Float64PtrFromPgtype(pf pgtype.Float8) *float64 {
	if !pf.Valid {
		return nil
	}
	v := pf.Float64
	return &v
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func NumericFromMinorUnits(minor int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(minor), Exp: minorUnitExp, Valid: true}
}

// MinorUnitsFromNumeric rescales a NUMERIC to hundredths, rounding half away from zero
// when the stored value carries more than two fractional digits.
func MinorUnitsFromNumeric(pn pgtype.Numeric) (int64, error) {
	if !pn.Valid {
		return 0, nil
	}
	if pn.NaN || pn.InfinityModifier != pgtype.Finite || pn.Int == nil {
		return 0, ErrInvalidNumericValue
	}

	v := new(big.Int).Set(pn.Int)
	shift := int64(pn.Exp) - minorUnitExp
	ten := big.NewInt(10)

	switch {
	case shift > 0:
		v.Mul(v, new(big.Int).Exp(ten, big.NewInt(shift), nil))
	case shift < 0:
		div := new(big.Int).Exp(ten, big.NewInt(-shift), nil)
		q, r := new(big.Int).QuoRem(v, div, new(big.Int))
		// |r|*2 >= div rounds away from zero
		if new(big.Int).Mul(new(big.Int).Abs(r), big.NewInt(2)).Cmp(div) >= 0 {
			if v.Sign() < 0 {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
		v = q
	}

	if !v.IsInt64() {
		return 0, ErrNumericOverflow
	}
	return v.Int64(), nil
}

// IsNoRows checks if the error is a pgx "no rows" error
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
