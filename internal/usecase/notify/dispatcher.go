package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storezee/internal/pkg/errs"
	"storezee/internal/pkg/metrics"
)

const (
	defaultWorkers        = 2
	defaultQueueSize      = 256
	defaultAttemptTimeout = 20 * time.Second
	deadLetterTimeout     = 5 * time.Second

	reasonQueueFull = "notification queue full"
	reasonStopped   = "dispatcher stopped"
)

type Options struct {
	Workers        int
	QueueSize      int
	AttemptTimeout time.Duration
	Retry          RetryPolicy
}

// Dispatcher delivers confirmations in the background. Delivery never reports
// back to the caller; anything that cannot be sent ends in the dead-letter store.
type Dispatcher struct {
	sender Sender
	dead   DeadLetterStore
	opts   Options

	queue chan BookingConfirmation
	wg    sync.WaitGroup

	// Rejected jobs are dead-lettered off the caller's goroutine, at most
	// cap(rejectSlots) at a time.
	rejectSlots chan struct{}
	rejects     sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool

	baseCtx context.Context
	cancel  context.CancelFunc
	now     func() time.Time
}

func NewDispatcher(sender Sender, dead DeadLetterStore, opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = defaultAttemptTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		sender:  sender,
		dead:    dead,
		opts:    opts,
		queue:       make(chan BookingConfirmation, opts.QueueSize),
		rejectSlots: make(chan struct{}, opts.QueueSize),
		baseCtx:     ctx,
		cancel:      cancel,
		now:         time.Now,
	}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	slog.Info("Notification dispatcher started", "workers", d.opts.Workers, "queue_size", d.opts.QueueSize)
}

// Stop refuses new jobs and waits for queued ones. If ctx ends first, in-flight
// retries are abandoned and their jobs dead-lettered.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		for job := range d.queue {
			d.deadLetter(job, reasonStopped, 0)
		}
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		d.rejects.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		slog.Info("Notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return errs.Wrap(ctx.Err(), "notification dispatcher stop")
	}
}

// Dispatch enqueues without blocking. A job that cannot be queued is handed
// to a background dead-letter write.
func (d *Dispatcher) Dispatch(job BookingConfirmation) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.reject(job, reasonStopped, false)
		return
	}

	select {
	case d.queue <- job:
		metrics.IncNotification("queued")
	default:
		d.reject(job, reasonQueueFull, true)
	}
}

// reject must be called with mu held. Writes started after Stop are not
// tracked, since Stop may already be waiting.
func (d *Dispatcher) reject(job BookingConfirmation, reason string, tracked bool) {
	select {
	case d.rejectSlots <- struct{}{}:
	default:
		metrics.IncNotification("dead_lettered")
		slog.Error("Booking confirmation dropped, dead-letter backlog full",
			"booking_id", job.BookingID,
			"booking_code", job.BookingCode,
			"reason", reason)
		return
	}

	if tracked {
		d.rejects.Add(1)
	}
	go func() {
		defer func() {
			<-d.rejectSlots
			if tracked {
				d.rejects.Done()
			}
		}()
		d.deadLetter(job, reason, 0)
	}()
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job BookingConfirmation) {
	attempts := d.opts.Retry.attempts()

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := d.baseCtx.Err(); err != nil {
			d.deadLetter(job, reasonStopped, attempt-1)
			return
		}

		lastErr = d.sendOnce(job)
		if lastErr == nil {
			metrics.IncNotification("sent")
			slog.Info("Booking confirmation sent", "booking_id", job.BookingID, "booking_code", job.BookingCode)
			return
		}

		slog.Warn("Booking confirmation attempt failed",
			"booking_id", job.BookingID,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", lastErr)

		if attempt == attempts {
			break
		}
		metrics.IncNotification("retried")

		timer := time.NewTimer(d.opts.Retry.NextDelay(attempt))
		select {
		case <-d.baseCtx.Done():
			timer.Stop()
			d.deadLetter(job, reasonStopped, attempt)
			return
		case <-timer.C:
		}
	}

	d.deadLetter(job, errs.Mark(lastErr, errs.ErrNotification).Error(), attempts)
}

func (d *Dispatcher) sendOnce(job BookingConfirmation) error {
	ctx, cancel := context.WithTimeout(d.baseCtx, d.opts.AttemptTimeout)
	defer cancel()
	return d.sender.Send(ctx, job)
}

func (d *Dispatcher) deadLetter(job BookingConfirmation, reason string, attempts int) {
	metrics.IncNotification("dead_lettered")
	slog.Error("Booking confirmation dead-lettered",
		"booking_id", job.BookingID,
		"booking_code", job.BookingCode,
		"attempts", attempts,
		"reason", reason)

	if d.dead == nil {
		return
	}

	// Detached from baseCtx so a stopping dispatcher still records the job.
	ctx, cancel := context.WithTimeout(context.Background(), deadLetterTimeout)
	defer cancel()
	err := d.dead.Put(ctx, DeadLetter{
		Confirmation: job,
		Reason:       reason,
		Attempts:     attempts,
		FailedAt:     d.now(),
	})
	if err != nil {
		slog.Error("Failed to store dead letter", "booking_id", job.BookingID, "error", err)
	}
}
