package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"storezee/internal/infra/readstore"
	"storezee/internal/infra/repository"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries     = 3
	defaultBaseBackoff    = 100 * time.Millisecond
	defaultAcquireTimeout = 5 * time.Second
	rollbackTimeout       = 5 * time.Second
)

var (
	ErrConnectionAcquire  = errs.New("failed to acquire database connection")
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type Options struct {
	AcquireTimeout time.Duration
	MaxRetries     int
	BaseBackoff    time.Duration
}

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	opts Options
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts Options) shared.UnitOfWork {
	if opts.AcquireTimeout <= 0 {
		opts.AcquireTimeout = defaultAcquireTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = defaultBaseBackoff
	}
	return &PostgresUoW{
		pool: pool,
		q:    q,
		opts: opts,
	}
}

// Within holds one pooled connection for the whole call, including retries, and
// releases it on every exit path. ReadCommitted prevents dirty reads while allowing concurrent writes.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, u.opts.AcquireTimeout)
	conn, err := u.pool.Acquire(acquireCtx)
	cancel()
	if err != nil {
		return errs.Mark(err, ErrConnectionAcquire)
	}
	defer conn.Release()

	return u.runInTxWithOptions(ctx, conn, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, conn *pgxpool.Conn, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.opts.MaxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.runAttempt(ctx, conn, options, fn)
		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if isRetryableError(err) && attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.opts.BaseBackoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runAttempt(ctx context.Context, conn *pgxpool.Conn, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := conn.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		rollback(ctx, pgxTx)
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	committed = true
	return nil
}

// rollback runs detached from the caller's deadline so an expired request still releases its locks.
func rollback(ctx context.Context, pgxTx pgx.Tx) {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()
	if rollbackErr := pgxTx.Rollback(rbCtx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	customerRepo     shared.CustomerRepository
	documentRepo     shared.DocumentRepository
	bookingRepo      shared.BookingRepository
	bookingAddonRepo shared.BookingAddonRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q, t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Documents() shared.DocumentRepository {
	if t.documentRepo == nil {
		t.documentRepo = repository.NewDocumentRepository(t.uow.q, t.dbtx)
	}
	return t.documentRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) BookingAddons() shared.BookingAddonRepository {
	if t.bookingAddonRepo == nil {
		t.bookingAddonRepo = repository.NewBookingAddonRepository(t.uow.q, t.dbtx)
	}
	return t.bookingAddonRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			catalog:   readstore.NewCatalogReadStore(t.uow.q, t.dbtx),
			customers: readstore.NewCustomerReadStore(t.uow.q, t.dbtx),
		}
	}
	return t.commandReads
}

type commandReads struct {
	catalog   *readstore.CatalogReadStore
	customers *readstore.CustomerReadStore
}

func (r *commandReads) AddonByID(ctx context.Context, token string) (*shared.AddonSnapshot, error) {
	addon, err := r.catalog.FindActiveAddon(ctx, token)
	if err != nil {
		return nil, err
	}
	return &shared.AddonSnapshot{
		ID:        addon.ID,
		Name:      addon.Name,
		UnitPrice: addon.UnitPrice,
	}, nil
}

func (r *commandReads) CustomerByPhone(ctx context.Context, phone string) (*shared.CustomerSnapshot, error) {
	c, err := r.customers.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return &shared.CustomerSnapshot{
		ID:             c.ID,
		FullName:       c.FullName,
		Email:          c.Email,
		Phone:          c.Phone,
		Role:           c.Role,
		ProfilePicture: c.ProfilePicture,
	}, nil
}
