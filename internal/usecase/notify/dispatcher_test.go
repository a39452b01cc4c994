//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu       sync.Mutex
	failures int
	calls    int
	sent     []notify.BookingConfirmation
	block    bool
}

func (f *fakeSender) Send(ctx context.Context, c notify.BookingConfirmation) error {
	f.mu.Lock()
	f.calls++
	fail := f.calls <= f.failures
	block := f.block
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	if fail {
		return errors.New("smtp unavailable")
	}

	f.mu.Lock()
	f.sent = append(f.sent, c)
	f.mu.Unlock()
	return nil
}

func (f *fakeSender) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSender) Sent() []notify.BookingConfirmation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.BookingConfirmation(nil), f.sent...)
}

type memoryDeadLetters struct {
	mu      sync.Mutex
	letters []notify.DeadLetter
}

func (m *memoryDeadLetters) Put(_ context.Context, dl notify.DeadLetter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.letters = append(m.letters, dl)
	return nil
}

func (m *memoryDeadLetters) All() []notify.DeadLetter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.DeadLetter(nil), m.letters...)
}

func confirmation(code string) notify.BookingConfirmation {
	amount, _ := booking.NewMoney(12000)
	return notify.BookingConfirmation{
		BookingID:   uuid.New(),
		BookingCode: code,
		CustomerID:  uuid.New(),
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "9876543210",
		Amount:      amount,
		BookedAt:    time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
	}
}

func fastOptions() notify.Options {
	return notify.Options{
		Workers:        1,
		QueueSize:      4,
		AttemptTimeout: time.Second,
		Retry: notify.RetryPolicy{
			MaxRetries:   2,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
		},
	}
}

func TestDispatcher_DeliversQueuedJob(t *testing.T) {
	sender := &fakeSender{}
	dead := &memoryDeadLetters{}
	d := notify.NewDispatcher(sender, dead, fastOptions())
	d.Start()

	job := confirmation("BKAAAAAAAAAA")
	d.Dispatch(job)

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, []notify.BookingConfirmation{job}, sender.Sent())
	assert.Empty(t, dead.All())
}

func TestDispatcher_RetriesThenSucceeds(t *testing.T) {
	sender := &fakeSender{failures: 2}
	dead := &memoryDeadLetters{}
	d := notify.NewDispatcher(sender, dead, fastOptions())
	d.Start()

	d.Dispatch(confirmation("BKBBBBBBBBBB"))

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 3, sender.Calls())
	assert.Len(t, sender.Sent(), 1)
	assert.Empty(t, dead.All())
}

func TestDispatcher_ExhaustedRetriesGoToDeadLetters(t *testing.T) {
	sender := &fakeSender{failures: 100}
	dead := &memoryDeadLetters{}
	d := notify.NewDispatcher(sender, dead, fastOptions())
	d.Start()

	job := confirmation("BKCCCCCCCCCC")
	d.Dispatch(job)

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 3, sender.Calls())

	letters := dead.All()
	require.Len(t, letters, 1)
	assert.Equal(t, job, letters[0].Confirmation)
	assert.Equal(t, 3, letters[0].Attempts)
	assert.Contains(t, letters[0].Reason, "smtp unavailable")
	assert.False(t, letters[0].FailedAt.IsZero())
}

func TestDispatcher_FullQueueIsDeadLettered(t *testing.T) {
	sender := &fakeSender{}
	dead := &memoryDeadLetters{}
	opts := fastOptions()
	opts.QueueSize = 1
	d := notify.NewDispatcher(sender, dead, opts)

	// Not started, so the single slot stays occupied.
	d.Dispatch(confirmation("BKDDDDDDDDDD"))
	overflow := confirmation("BKEEEEEEEEEE")
	d.Dispatch(overflow)

	require.Eventually(t, func() bool { return len(dead.All()) == 1 }, time.Second, time.Millisecond)
	letters := dead.All()
	assert.Equal(t, overflow.BookingCode, letters[0].Confirmation.BookingCode)
	assert.Equal(t, 0, letters[0].Attempts)

	require.NoError(t, d.Stop(context.Background()))
	assert.Len(t, dead.All(), 2)
	assert.Zero(t, sender.Calls())
}

func TestDispatcher_DispatchAfterStop(t *testing.T) {
	sender := &fakeSender{}
	dead := &memoryDeadLetters{}
	d := notify.NewDispatcher(sender, dead, fastOptions())
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	d.Dispatch(confirmation("BKFFFFFFFFFF"))

	assert.Zero(t, sender.Calls())
	require.Eventually(t, func() bool { return len(dead.All()) == 1 }, time.Second, time.Millisecond)
	assert.NoError(t, d.Stop(context.Background()))
}

// slowDeadLetters holds every Put until release is closed.
type slowDeadLetters struct {
	memoryDeadLetters
	release chan struct{}
}

func (s *slowDeadLetters) Put(ctx context.Context, dl notify.DeadLetter) error {
	<-s.release
	return s.memoryDeadLetters.Put(ctx, dl)
}

func TestDispatcher_RejectedJobDoesNotBlockCaller(t *testing.T) {
	dead := &slowDeadLetters{release: make(chan struct{})}
	opts := fastOptions()
	opts.QueueSize = 1
	d := notify.NewDispatcher(&fakeSender{}, dead, opts)

	d.Dispatch(confirmation("BK1111111111"))

	returned := make(chan struct{})
	go func() {
		d.Dispatch(confirmation("BK2222222222"))
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Dispatch waited on the dead-letter store")
	}

	stopped := make(chan error, 1)
	go func() { stopped <- d.Stop(context.Background()) }()
	select {
	case <-stopped:
		t.Fatal("Stop returned before the pending dead letter was written")
	case <-time.After(20 * time.Millisecond):
	}

	close(dead.release)
	require.NoError(t, <-stopped)
	assert.Len(t, dead.All(), 2)
}

func TestDispatcher_StopDeadlineAbandonsInFlight(t *testing.T) {
	sender := &fakeSender{block: true}
	dead := &memoryDeadLetters{}
	opts := fastOptions()
	opts.AttemptTimeout = time.Minute
	d := notify.NewDispatcher(sender, dead, opts)
	d.Start()

	d.Dispatch(confirmation("BK0000000000"))
	require.Eventually(t, func() bool { return sender.Calls() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Stop(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, dead.All(), 1)
}

func TestRetryPolicy_NextDelay(t *testing.T) {
	p := notify.RetryPolicy{InitialDelay: 2 * time.Second, MaxDelay: 10 * time.Second}

	assert.Equal(t, 2*time.Second, p.NextDelay(0))
	assert.Equal(t, 2*time.Second, p.NextDelay(1))
	assert.Equal(t, 4*time.Second, p.NextDelay(2))
	assert.Equal(t, 8*time.Second, p.NextDelay(3))
	assert.Equal(t, 10*time.Second, p.NextDelay(4))
	assert.Equal(t, time.Second, notify.RetryPolicy{}.NextDelay(1))
}
