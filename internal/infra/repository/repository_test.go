//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	"storezee/internal/infra/repository"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) InsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCustomerParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) NextUserDocumentID(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) InsertUserDocument(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUserDocumentParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) InsertStorageBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertStorageBookingParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWriteQueries) InsertBookingAddon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingAddonParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

var testNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newCustomer(t *testing.T) *booking.Customer {
	t.Helper()
	email, err := booking.NewEmail("jane@example.com")
	require.NoError(t, err)
	phone, err := booking.NewPhone("9876543210")
	require.NoError(t, err)
	coords, err := booking.NewCoordinates(12.97, 77.59)
	require.NoError(t, err)

	c, err := booking.NewCustomer(booking.NewCustomerParams{
		FullName:       "Jane Doe",
		Email:          email,
		Phone:          phone,
		Coordinates:    &coords,
		CityName:       "MG Road",
		ProfilePicture: "https://avatar.iran.liara.run/public/3.png",
	}, testNow)
	require.NoError(t, err)
	return c
}

func newBooking(t *testing.T, photos ...string) *booking.Booking {
	t.Helper()
	d, err := booking.NewDuration(6)
	require.NoError(t, err)
	amount, err := booking.NewMoney(12000)
	require.NoError(t, err)

	b, err := booking.NewBooking(booking.NewBookingParams{
		StartTime:       testNow,
		Duration:        d,
		PhotoReferences: photos,
		CustomerID:      uuid.New(),
		StorageUnitID:   uuid.New(),
		Location:        "MG Road",
		Amount:          amount,
	}, testNow)
	require.NoError(t, err)
	return b
}

// =============================================================================
// Customer
// =============================================================================

func TestCustomerRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "database error", mockError: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "duplicate id", mockError: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			db := &mockDBTX{}
			c := newCustomer(t)

			q.On("InsertCustomer", ctx, db, mock.MatchedBy(func(p sqlc.InsertCustomerParams) bool {
				return p.ID == c.ID() &&
					p.Role == booking.RoleUser &&
					p.IsVerified &&
					p.Latitude.Valid && p.Latitude.Float64 == 12.97 &&
					p.CityName.String == "MG Road"
			})).Return(tc.mockError)

			err := repository.NewCustomerRepository(q, db).Create(ctx, c)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

// =============================================================================
// Identity document
// =============================================================================

func TestDocumentRepository_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("success: id drawn from sequence", func(t *testing.T) {
		q := new(MockWriteQueries)
		db := &mockDBTX{}
		doc, err := booking.NewIdentityDocument(customerID, "", "", testNow)
		require.NoError(t, err)

		q.On("NextUserDocumentID", ctx, db).Return(int64(42), nil)
		q.On("InsertUserDocument", ctx, db, sqlc.InsertUserDocumentParams{
			ID:           42,
			OriginalName: "",
			ImghippoUrl:  "",
			CreatedAt:    pgconv.TimeToPgtype(testNow),
			UserID:       customerID,
		}).Return(nil)

		id, err := repository.NewDocumentRepository(q, db).Create(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		q.AssertExpectations(t)
	})

	t.Run("error: sequence failure skips insert", func(t *testing.T) {
		q := new(MockWriteQueries)
		db := &mockDBTX{}
		doc, err := booking.NewIdentityDocument(customerID, "id.pdf", "https://b/id.pdf", testNow)
		require.NoError(t, err)

		q.On("NextUserDocumentID", ctx, db).Return(int64(0), errors.New("boom"))

		_, err = repository.NewDocumentRepository(q, db).Create(ctx, doc)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		q.AssertNotCalled(t, "InsertUserDocument", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: missing customer is a foreign key violation", func(t *testing.T) {
		q := new(MockWriteQueries)
		db := &mockDBTX{}
		doc, err := booking.NewIdentityDocument(customerID, "id.pdf", "", testNow)
		require.NoError(t, err)

		q.On("NextUserDocumentID", ctx, db).Return(int64(7), nil)
		q.On("InsertUserDocument", ctx, db, mock.Anything).Return(&pgconn.PgError{Code: "23503"})

		_, err = repository.NewDocumentRepository(q, db).Create(ctx, doc)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

// =============================================================================
// Booking
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns inserted id", func(t *testing.T) {
		q := new(MockWriteQueries)
		db := &mockDBTX{}
		b := newBooking(t, "https://b/1.jpg", "https://b/2.jpg")

		q.On("InsertStorageBooking", ctx, db, mock.MatchedBy(func(p sqlc.InsertStorageBookingParams) bool {
			return p.ID == b.ID() &&
				p.PrimaryPhoto == "https://b/1.jpg" &&
				string(p.LuggageImages) == `["https://b/1.jpg","https://b/2.jpg"]` &&
				p.BookedTime == 6 &&
				p.Status == booking.StatusConfirmed &&
				p.PaymentStatus == booking.PaymentStatusPending &&
				p.Amount.Int.Int64() == 12000 && p.Amount.Exp == -2
		})).Return(b.ID(), nil)

		id, err := repository.NewBookingRepository(q, db).Create(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), id)
		q.AssertExpectations(t)
	})

	t.Run("error: unknown storage unit", func(t *testing.T) {
		q := new(MockWriteQueries)
		db := &mockDBTX{}
		b := newBooking(t)

		q.On("InsertStorageBooking", ctx, db, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

		id, err := repository.NewBookingRepository(q, db).Create(ctx, b)
		require.Error(t, err)
		assert.Equal(t, uuid.Nil, id)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

// =============================================================================
// Booking add-on
// =============================================================================

func TestBookingAddonRepository_Create(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	addonID := uuid.New()

	rows := booking.NewAddonAssociations(bookingID, []string{"locker", "unknown"}, testNow)
	rows[0].ResolveTo(addonID)

	q := new(MockWriteQueries)
	db := &mockDBTX{}
	q.On("InsertBookingAddon", ctx, db, mock.MatchedBy(func(p sqlc.InsertBookingAddonParams) bool {
		return p.AddonToken == "locker" && p.AddonID.Valid && p.AddonID.Bytes == addonID && p.BookingID == bookingID
	})).Return(nil)
	q.On("InsertBookingAddon", ctx, db, mock.MatchedBy(func(p sqlc.InsertBookingAddonParams) bool {
		return p.AddonToken == "unknown" && !p.AddonID.Valid
	})).Return(assert.AnError)

	repo := repository.NewBookingAddonRepository(q, db)

	require.NoError(t, repo.Create(ctx, rows[0]))

	err := repo.Create(ctx, rows[1])
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	q.AssertExpectations(t)
}
