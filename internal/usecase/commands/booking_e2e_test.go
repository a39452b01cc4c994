//go:build e2e

package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"storezee/internal/domain/booking"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/infra/uow"
	"storezee/internal/pkg/clock"
	"storezee/internal/pkg/errs"
	"storezee/internal/testutil/dbtest"
	"storezee/internal/usecase/commands"
	"storezee/internal/usecase/notify"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// memStore keeps objects in memory and fails the nth Put when failAt > 0.
type memStore struct {
	mu      sync.Mutex
	puts    int
	failAt  int
	objects map[string][]byte
	deleted []string
}

func newMemStore(failAt int) *memStore {
	return &memStore{failAt: failAt, objects: map[string][]byte{}}
}

func (m *memStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.puts == m.failAt {
		return "", errs.New("bucket unavailable")
	}
	m.objects[key] = data
	return "https://storezee-test.s3.ap-south-1.amazonaws.com/" + key, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memStore) remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

type jobRecorder struct {
	mu   sync.Mutex
	jobs []notify.BookingConfirmation
}

func (r *jobRecorder) Dispatch(job notify.BookingConfirmation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
}

func (r *jobRecorder) all() []notify.BookingConfirmation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.BookingConfirmation(nil), r.jobs...)
}

type BookingWorkflowSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	now  time.Time
}

func TestBookingWorkflowSuite(t *testing.T) {
	suite.Run(t, new(BookingWorkflowSuite))
}

func (s *BookingWorkflowSuite) SetupSuite() {
	s.pool, _ = dbtest.PrepareDatabase(s.T(), 4)
	s.now = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
}

func (s *BookingWorkflowSuite) SetupTest() {
	s.Require().NoError(dbtest.ResetDB(s.pool))
}

func (s *BookingWorkflowSuite) newCommands(store commands.ObjectStore, jobs *jobRecorder) commands.BookingCommands {
	opts := commands.DefaultWorkflowOptions()
	opts.PhotoConcurrency = 1
	opts.Timeout = 10 * time.Second

	u := uow.NewPostgresUoW(s.pool, sqlc.New(), uow.Options{AcquireTimeout: time.Second})
	avatars := booking.NewAvatarPickerWith(func(int) int { return 6 })
	return commands.NewBookingCommands(u, store, jobs, avatars, clock.NewMockClock(s.now), opts)
}

func (s *BookingWorkflowSuite) input() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		StorageUnitID: dbtest.StorageUnitID.String(),
		StartTime:     "2026-10-14T15:00:00+05:30",
		Location:      "MG Road",
		DurationHours: "6",
		Addons:        dbtest.LockerAddonID.String() + ", gift-wrap",
	}
}

func files(photos int) commands.BookingFiles {
	f := commands.BookingFiles{
		Document: &commands.UploadFile{Filename: "id.pdf", ContentType: "application/pdf", Data: []byte("pdf")},
	}
	for range photos {
		f.Photos = append(f.Photos, commands.UploadFile{Filename: "bag.jpg", ContentType: "image/jpeg", Data: []byte("jpg")})
	}
	return f
}

func (s *BookingWorkflowSuite) TestCreatesEveryRowAndDispatchesAfterCommit() {
	ctx := context.Background()
	store := newMemStore(0)
	jobs := &jobRecorder{}

	res, err := s.newCommands(store, jobs).CreateBooking(ctx, s.input(), files(2))
	s.Require().NoError(err)

	s.Equal(1, dbtest.CountRows(s.T(), s.pool, "users_user"))
	s.Equal(1, dbtest.CountRows(s.T(), s.pool, "users_userdocument"))
	s.Equal(1, dbtest.CountRows(s.T(), s.pool, "storage_bookings_storagebooking"))
	s.Equal(2, dbtest.CountRows(s.T(), s.pool, "storage_bookings_bookingaddon"))
	s.Equal(3, store.remaining())
	s.Len(res.PhotoReferences, 2)
	s.Equal("120.00", res.Amount.Decimal())
	s.True(strings.HasPrefix(res.BookingCode, "BK"))

	var amount, code, picture, docRef string
	var images int
	err = s.pool.QueryRow(ctx, `
		SELECT b.amount::text, b.booking_id, jsonb_array_length(b.luggage_images), u.profile_picture, d.imghippo_url
		FROM storage_bookings_storagebooking b
		JOIN users_user u ON u.id = b.user_booked_id
		JOIN users_userdocument d ON d.user_id = u.id
		WHERE b.id = $1`, res.BookingID).Scan(&amount, &code, &images, &picture, &docRef)
	s.Require().NoError(err)
	s.Equal("120.00", amount)
	s.Equal(res.BookingCode, code)
	s.Equal(2, images)
	s.Equal("https://avatar.iran.liara.run/public/7.png", picture)
	s.Contains(docRef, "documents/"+res.CustomerID.String()+"/")

	dispatched := jobs.all()
	s.Require().Len(dispatched, 1)
	s.Equal(res.BookingID, dispatched[0].BookingID)
	s.Equal("asha@example.com", dispatched[0].Email)
}

func (s *BookingWorkflowSuite) TestPhotoFailureLeavesNoRowsAndNoObjects() {
	store := newMemStore(3) // document, first photo, then the second photo fails
	jobs := &jobRecorder{}

	_, err := s.newCommands(store, jobs).CreateBooking(context.Background(), s.input(), files(2))

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrStorage))
	for _, table := range []string{"users_user", "users_userdocument", "storage_bookings_storagebooking", "storage_bookings_bookingaddon"} {
		s.Equal(0, dbtest.CountRows(s.T(), s.pool, table), table)
	}
	s.Equal(0, store.remaining())
	s.Len(store.deleted, 3, "the failed photo key is deleted along with the stored ones")
	s.Empty(jobs.all())
}

func (s *BookingWorkflowSuite) TestUnknownStorageUnitIsPersistenceFailure() {
	store := newMemStore(0)
	jobs := &jobRecorder{}
	in := s.input()
	in.StorageUnitID = "00000000-0000-4000-8000-000000000001"

	_, err := s.newCommands(store, jobs).CreateBooking(context.Background(), in, files(1))

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrPersistence))
	s.Equal(0, dbtest.CountRows(s.T(), s.pool, "users_user"))
	s.Equal(0, store.remaining())
	s.Empty(jobs.all())
}
