package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/pkg/errs"
	"storezee/internal/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	uploadKindDocument = "document"
	uploadKindPhoto    = "photo"

	compensationTimeout = 10 * time.Second
)

type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// BookingFiles holds at most one identity document and any number of item photos.
type BookingFiles struct {
	Document *UploadFile
	Photos   []UploadFile
}

// uploadLedger remembers which keys each transaction attempt issued a PUT for,
// so the objects of attempts that never committed can be removed afterwards.
// A key is recorded before its PUT: a request cut short by cancellation may
// still have written the object.
type uploadLedger struct {
	mu       sync.Mutex
	attempts [][]ledgerEntry
}

type ledgerEntry struct {
	key    string
	failed bool
}

func (l *uploadLedger) beginAttempt() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = append(l.attempts, nil)
}

func (l *uploadLedger) record(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.attempts) == 0 {
		l.attempts = append(l.attempts, nil)
	}
	last := len(l.attempts) - 1
	l.attempts[last] = append(l.attempts[last], ledgerEntry{key: key})
}

// markFailed flags a recorded key whose PUT returned an error. Its reference
// is never persisted, so it is an orphan even when the attempt commits.
func (l *uploadLedger) markFailed(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.attempts) - 1; i >= 0; i-- {
		for j := range l.attempts[i] {
			if l.attempts[i][j].key == key {
				l.attempts[i][j].failed = true
				return
			}
		}
	}
}

// orphans lists keys not referenced by committed rows, newest first.
func (l *uploadLedger) orphans(committed bool) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	last := len(l.attempts) - 1
	var out []string
	for i := last; i >= 0; i-- {
		entries := l.attempts[i]
		for j := len(entries) - 1; j >= 0; j-- {
			if committed && i == last && !entries[j].failed {
				continue
			}
			out = append(out, entries[j].key)
		}
	}
	return out
}

func (c *bookingCommandsImpl) upload(
	ctx context.Context,
	ledger *uploadLedger,
	prefix booking.KeyPrefix,
	customerID uuid.UUID,
	f UploadFile,
) (string, error) {
	key := booking.StorageKey(prefix, customerID, uuid.New(), f.Filename)
	ledger.record(key)
	ref, err := c.store.Put(ctx, key, f.Data, f.ContentType)
	if err != nil {
		ledger.markFailed(key)
		return "", errs.Mark(errs.Wrapf(err, "upload %s", key), errs.ErrStorage)
	}
	return ref, nil
}

// uploadDocument returns the empty reference when there is no file or the
// failure is absorbed.
func (c *bookingCommandsImpl) uploadDocument(
	ctx context.Context,
	ledger *uploadLedger,
	customerID uuid.UUID,
	doc *UploadFile,
) (string, error) {
	if doc == nil {
		return "", nil
	}

	ref, err := c.upload(ctx, ledger, booking.DocumentPrefix, customerID, *doc)
	if err == nil {
		metrics.IncUpload(uploadKindDocument, "ok")
		return ref, nil
	}

	if c.opts.DocumentUploadPolicy == PolicyFatal {
		metrics.IncUpload(uploadKindDocument, "failed")
		return "", err
	}
	metrics.IncUpload(uploadKindDocument, "absorbed")
	slog.WarnContext(ctx, "Identity document upload failed, continuing without it",
		"customer_id", customerID,
		"filename", doc.Filename,
		"error", err)
	return "", nil
}

// uploadPhotos keeps the references in submission order. Under PolicyFatal the
// first failure cancels the remaining uploads.
func (c *bookingCommandsImpl) uploadPhotos(
	ctx context.Context,
	ledger *uploadLedger,
	customerID uuid.UUID,
	photos []UploadFile,
) ([]string, error) {
	if len(photos) == 0 {
		return []string{}, nil
	}

	refs := make([]string, len(photos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.opts.PhotoConcurrency))

	for i, photo := range photos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ref, err := c.upload(gctx, ledger, booking.PhotoPrefix, customerID, photo)
			if err != nil {
				if c.opts.PhotoUploadPolicy == PolicyAbsorb {
					metrics.IncUpload(uploadKindPhoto, "absorbed")
					slog.WarnContext(ctx, "Photo upload failed, continuing without it",
						"customer_id", customerID,
						"filename", photo.Filename,
						"error", err)
					return nil
				}
				metrics.IncUpload(uploadKindPhoto, "failed")
				return err
			}
			metrics.IncUpload(uploadKindPhoto, "ok")
			refs[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

// compensate deletes orphaned objects newest first. Failures are logged and skipped.
func (c *bookingCommandsImpl) compensate(ctx context.Context, keys []string) {
	if !c.opts.CleanupOrphanedUploads || len(keys) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	for _, key := range keys {
		if err := c.store.Delete(ctx, key); err != nil {
			slog.ErrorContext(ctx, "Failed to delete orphaned upload", "key", key, "error", err)
			metrics.IncUpload("orphan", "failed")
			continue
		}
		metrics.IncUpload("orphan", "deleted")
	}
}
