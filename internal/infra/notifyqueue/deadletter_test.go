//go:build unit

package notifyqueue_test

import (
	"context"
	"testing"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/infra/notifyqueue"
	"storezee/internal/pkg/config"
	"storezee/internal/usecase/notify"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeadLetter(t *testing.T, code string) notify.DeadLetter {
	t.Helper()
	amount, err := booking.NewMoney(12050)
	require.NoError(t, err)
	return notify.DeadLetter{
		Confirmation: notify.BookingConfirmation{
			BookingID:   uuid.New(),
			BookingCode: code,
			CustomerID:  uuid.New(),
			FullName:    "Jane Doe",
			Email:       "jane@example.com",
			Phone:       "9876543210",
			Amount:      amount,
			BookedAt:    time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
		},
		Reason:   "smtp unavailable",
		Attempts: 4,
		FailedAt: time.Date(2026, 10, 14, 9, 31, 0, 0, time.UTC),
	}
}

func TestRedisDeadLetterStore(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := notifyqueue.NewRedisClient(config.RedisConfig{Address: s.Addr()})
	defer client.Close()

	store := notifyqueue.NewRedisDeadLetterStore(client)
	ctx := context.Background()

	t.Run("PutAndReadBack", func(t *testing.T) {
		first := newDeadLetter(t, "BK0000000001")
		second := newDeadLetter(t, "BK0000000002")

		require.NoError(t, store.Put(ctx, first))
		require.NoError(t, store.Put(ctx, second))

		got, err := store.Pending(ctx, 10)
		require.NoError(t, err)

		want := []notify.DeadLetter{second, first}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(booking.Money{})); diff != "" {
			t.Errorf("Pending() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("StoredAsJSONOnList", func(t *testing.T) {
		vals, err := s.List(notifyqueue.DeadLetterKey)
		require.NoError(t, err)
		require.NotEmpty(t, vals)
		assert.Contains(t, vals[0], `"booking_code":"BK0000000002"`)
		assert.Contains(t, vals[0], `"amount":"120.50"`)
	})

	t.Run("MalformedEntriesAreSkipped", func(t *testing.T) {
		s.Lpush(notifyqueue.DeadLetterKey, "{not json")

		got, err := store.Pending(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestRedisDeadLetterStore_ServerDown(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: s.Addr(), MaxRetries: -1})
	defer client.Close()
	s.Close()

	store := notifyqueue.NewRedisDeadLetterStore(client)
	assert.Error(t, store.Put(context.Background(), newDeadLetter(t, "BK0000000003")))
}

func TestLogDeadLetterStore(t *testing.T) {
	assert.NoError(t, notifyqueue.LogDeadLetterStore{}.Put(context.Background(), newDeadLetter(t, "BK0000000004")))
}
