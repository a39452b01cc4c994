//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"storezee/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddonTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "blank tokens dropped", input: "a, ,b,", want: []string{"a", "b"}},
		{name: "empty string", input: "", want: []string{}},
		{name: "only separators", input: " , ,,", want: []string{}},
		{name: "surrounding whitespace trimmed", input: "  locker-1 ,\tinsurance  ", want: []string{"locker-1", "insurance"}},
		{name: "order preserved", input: "z,a,m", want: []string{"z", "a", "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.ParseAddonTokens(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAddonTokens(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNewBookingCode(t *testing.T) {
	id := uuid.MustParse("3f2a9c1b-0d4e-4f6a-8b7c-1234567890ab")
	assert.Equal(t, "BK3F2A9C1B0D", booking.NewBookingCode(id))

	seen := make(map[string]struct{})
	for range 1000 {
		code := booking.NewBookingCode(uuid.New())
		require.Len(t, code, 12)
		require.True(t, strings.HasPrefix(code, "BK"))
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestCalculateAmount(t *testing.T) {
	six, err := booking.NewDuration(6)
	require.NoError(t, err)

	price, err := booking.NewMoney(2000)
	require.NoError(t, err)

	amount := booking.CalculateAmount(&price, six)
	assert.Equal(t, int64(12000), amount.Minor())
	assert.Equal(t, "120", amount.String())

	assert.True(t, booking.CalculateAmount(nil, six).IsZero())
}

func TestCalculateAmount_AllDurations(t *testing.T) {
	price, err := booking.NewMoney(1999)
	require.NoError(t, err)

	for h := booking.MinDurationHours; h <= booking.MaxDurationHours; h++ {
		d, err := booking.NewDuration(h)
		require.NoError(t, err)
		assert.Equal(t, int64(1999*h), booking.CalculateAmount(&price, d).Minor())
	}
}

func TestStorageKey(t *testing.T) {
	customerID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	token := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	tests := []struct {
		name     string
		prefix   booking.KeyPrefix
		filename string
		want     string
	}{
		{
			name:     "document keeps extension",
			prefix:   booking.DocumentPrefix,
			filename: "aadhaar.pdf",
			want:     "documents/11111111-2222-3333-4444-555555555555/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.pdf",
		},
		{
			name:     "document without extension",
			prefix:   booking.DocumentPrefix,
			filename: "scan",
			want:     "documents/11111111-2222-3333-4444-555555555555/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.bin",
		},
		{
			name:     "photo keeps last extension",
			prefix:   booking.PhotoPrefix,
			filename: "bag.front.PNG",
			want:     "luggage/11111111-2222-3333-4444-555555555555/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.PNG",
		},
		{
			name:     "photo without extension",
			prefix:   booking.PhotoPrefix,
			filename: "",
			want:     "luggage/11111111-2222-3333-4444-555555555555/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.jpg",
		},
		{
			name:     "unsafe extension replaced",
			prefix:   booking.PhotoPrefix,
			filename: "bag.j/pg",
			want:     "luggage/11111111-2222-3333-4444-555555555555/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.StorageKey(tt.prefix, customerID, token, tt.filename))
		})
	}
}

func TestDuration(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		_, err := booking.NewDuration(0)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)
		_, err = booking.NewDuration(721)
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)
		_, err = booking.NewDuration(1)
		assert.NoError(t, err)
		_, err = booking.NewDuration(720)
		assert.NoError(t, err)
	})

	t.Run("end time is start plus whole hours", func(t *testing.T) {
		start := time.Date(2026, 3, 8, 1, 30, 0, 0, time.UTC)
		for h := booking.MinDurationHours; h <= booking.MaxDurationHours; h++ {
			d, err := booking.NewDuration(h)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(h)*3600*time.Second, d.EndTime(start).Sub(start))
		}
	})
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{minor: 0, want: "0"},
		{minor: 12000, want: "120"},
		{minor: 12050, want: "120.50"},
		{minor: 5, want: "0.05"},
	}
	for _, tt := range tests {
		m, err := booking.NewMoney(tt.minor)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.String())
	}

	m, err := booking.NewMoney(12000)
	require.NoError(t, err)
	assert.Equal(t, "120.00", m.Decimal())

	_, err = booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativeMoney)
}

func TestAvatarPicker(t *testing.T) {
	p := booking.NewAvatarPickerWith(func(n int) int {
		assert.Equal(t, 99, n)
		return 0
	})
	assert.Equal(t, "https://avatar.iran.liara.run/public/1.png", p.Pick())

	p = booking.NewAvatarPickerWith(func(n int) int { return n - 1 })
	assert.Equal(t, "https://avatar.iran.liara.run/public/99.png", p.Pick())
}
