package notifyqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/pkg/config"
	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DeadLetterKey = "storezee:notifications:dead"

// record is the wire form kept in Redis.
type record struct {
	BookingID   uuid.UUID `json:"booking_id"`
	BookingCode string    `json:"booking_code"`
	CustomerID  uuid.UUID `json:"customer_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	AmountMinor int64     `json:"amount_minor"`
	Amount      string    `json:"amount"`
	BookedAt    time.Time `json:"booked_at"`
	Reason      string    `json:"reason"`
	Attempts    int       `json:"attempts"`
	FailedAt    time.Time `json:"failed_at"`
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

type RedisDeadLetterStore struct {
	client *redis.Client
	key    string
}

func NewRedisDeadLetterStore(client *redis.Client) *RedisDeadLetterStore {
	return &RedisDeadLetterStore{client: client, key: DeadLetterKey}
}

func (s *RedisDeadLetterStore) Put(ctx context.Context, dl notify.DeadLetter) error {
	if s.client == nil {
		return errs.New("redis client is nil")
	}

	data, err := json.Marshal(toRecord(dl))
	if err != nil {
		return errs.Wrap(err, "failed to marshal dead letter")
	}
	if err := s.client.LPush(ctx, s.key, data).Err(); err != nil {
		return errs.Wrap(err, "failed to push dead letter")
	}
	return nil
}

// Pending returns stored records newest first.
func (s *RedisDeadLetterStore) Pending(ctx context.Context, limit int64) ([]notify.DeadLetter, error) {
	if limit <= 0 {
		limit = 100
	}
	vals, err := s.client.LRange(ctx, s.key, 0, limit-1).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read dead letters")
	}

	out := make([]notify.DeadLetter, 0, len(vals))
	for _, v := range vals {
		var r record
		if err := json.Unmarshal([]byte(v), &r); err != nil {
			slog.Warn("Skipping malformed dead letter", "error", err)
			continue
		}
		dl, err := r.toDeadLetter()
		if err != nil {
			slog.Warn("Skipping malformed dead letter", "booking_id", r.BookingID, "error", err)
			continue
		}
		out = append(out, dl)
	}
	return out, nil
}

// LogDeadLetterStore is used when Redis is not configured.
type LogDeadLetterStore struct{}

func (LogDeadLetterStore) Put(_ context.Context, dl notify.DeadLetter) error {
	slog.Error("Undeliverable booking confirmation",
		"booking_id", dl.Confirmation.BookingID,
		"booking_code", dl.Confirmation.BookingCode,
		"email", dl.Confirmation.Email,
		"attempts", dl.Attempts,
		"reason", dl.Reason)
	return nil
}

func toRecord(dl notify.DeadLetter) record {
	c := dl.Confirmation
	return record{
		BookingID:   c.BookingID,
		BookingCode: c.BookingCode,
		CustomerID:  c.CustomerID,
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		AmountMinor: c.Amount.Minor(),
		Amount:      c.Amount.Decimal(),
		BookedAt:    c.BookedAt,
		Reason:      dl.Reason,
		Attempts:    dl.Attempts,
		FailedAt:    dl.FailedAt,
	}
}

func (r record) toDeadLetter() (notify.DeadLetter, error) {
	amount, err := booking.NewMoney(r.AmountMinor)
	if err != nil {
		return notify.DeadLetter{}, err
	}
	return notify.DeadLetter{
		Confirmation: notify.BookingConfirmation{
			BookingID:   r.BookingID,
			BookingCode: r.BookingCode,
			CustomerID:  r.CustomerID,
			FullName:    r.FullName,
			Email:       r.Email,
			Phone:       r.Phone,
			Amount:      amount,
			BookedAt:    r.BookedAt,
		},
		Reason:   r.Reason,
		Attempts: r.Attempts,
		FailedAt: r.FailedAt,
	}, nil
}
