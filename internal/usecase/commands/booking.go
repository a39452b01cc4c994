package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/infra"
	"storezee/internal/pkg/clock"
	"storezee/internal/pkg/errs"
	"storezee/internal/pkg/metrics"
	"storezee/internal/usecase/notify"
	"storezee/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingResult struct {
	CustomerID      uuid.UUID
	BookingID       uuid.UUID
	BookingCode     string
	Amount          booking.Money
	PhotoReferences []string
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	store    ObjectStore
	notifier NotificationDispatcher
	avatars  booking.ProfilePicturePicker
	clock    clock.Clock
	opts     WorkflowOptions
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	store ObjectStore,
	notifier NotificationDispatcher,
	avatars booking.ProfilePicturePicker,
	clock clock.Clock,
	opts WorkflowOptions,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		store:    store,
		notifier: notifier,
		avatars:  avatars,
		clock:    clock,
		opts:     opts,
	}
}

// attemptOutcome is what one committed transaction attempt produced.
type attemptOutcome struct {
	result       *CreateBookingResult
	confirmation notify.BookingConfirmation
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	input CreateBookingInput,
	files BookingFiles,
) (*CreateBookingResult, error) {
	started := time.Now()
	defer func() { metrics.ObserveWorkflowSeconds(time.Since(started).Seconds()) }()

	req, err := input.Validate(c.opts.TimeZone)
	if err != nil {
		metrics.IncWorkflowFailure("validation")
		return nil, err
	}

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	ledger := &uploadLedger{}
	var outcome attemptOutcome

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ledger.beginAttempt()
		o, err := c.runAttempt(ctx, tx, req, files, ledger)
		if err != nil {
			return err
		}
		outcome = o
		return nil
	})
	if err != nil {
		c.compensate(ctx, ledger.orphans(false))
		kind, classified := classifyFailure(ctx, err)
		metrics.IncWorkflowFailure(kind)
		slog.ErrorContext(ctx, "Booking workflow rolled back",
			"kind", kind,
			"phone", req.Phone.Value(),
			"error", err)
		return nil, classified
	}

	// Objects from earlier attempts that were retried away are orphans too.
	c.compensate(ctx, ledger.orphans(true))

	metrics.IncBookingCreated()
	slog.InfoContext(ctx, "Booking created",
		"customer_id", outcome.result.CustomerID,
		"booking_id", outcome.result.BookingID,
		"booking_code", outcome.result.BookingCode,
		"photos", len(outcome.result.PhotoReferences))

	c.dispatch(ctx, outcome.confirmation)

	return outcome.result, nil
}

func (c *bookingCommandsImpl) runAttempt(
	ctx context.Context,
	tx shared.Tx,
	req *BookingRequest,
	files BookingFiles,
	ledger *uploadLedger,
) (attemptOutcome, error) {
	now := c.clock.Now()

	customerID, err := c.createOrReuseCustomer(ctx, tx, req, now)
	if err != nil {
		return attemptOutcome{}, err
	}

	docRef, err := c.uploadDocument(ctx, ledger, customerID, files.Document)
	if err != nil {
		return attemptOutcome{}, err
	}
	var docName string
	if files.Document != nil {
		docName = files.Document.Filename
	}
	document, err := booking.NewIdentityDocument(customerID, docName, docRef, now)
	if err != nil {
		return attemptOutcome{}, errs.Mark(err, errs.ErrValidation)
	}
	if _, err := tx.Documents().Create(ctx, document); err != nil {
		return attemptOutcome{}, errs.Mark(err, errs.ErrPersistence)
	}

	photoRefs, err := c.uploadPhotos(ctx, ledger, customerID, files.Photos)
	if err != nil {
		return attemptOutcome{}, err
	}

	unitPrice, resolved, err := c.resolveAddons(ctx, tx, req.AddonTokens)
	if err != nil {
		return attemptOutcome{}, err
	}

	b, err := booking.NewBooking(booking.NewBookingParams{
		Code:            booking.NewBookingCode(uuid.New()),
		StartTime:       req.StartTime,
		Duration:        req.Duration,
		PhotoReferences: photoRefs,
		CustomerID:      customerID,
		StorageUnitID:   req.StorageUnitID,
		Location:        req.Location,
		Coordinates:     req.Coordinates,
		Remark:          req.Remark,
		Amount:          booking.CalculateAmount(unitPrice, req.Duration),
	}, now)
	if err != nil {
		return attemptOutcome{}, errs.Mark(err, errs.ErrValidation)
	}

	bookingID, err := tx.Bookings().Create(ctx, b)
	if err != nil {
		return attemptOutcome{}, errs.Mark(err, errs.ErrPersistence)
	}

	for _, assoc := range booking.NewAddonAssociations(bookingID, req.AddonTokens, now) {
		if id, ok := resolved[assoc.Token()]; ok {
			assoc.ResolveTo(id)
		}
		if err := tx.BookingAddons().Create(ctx, assoc); err != nil {
			return attemptOutcome{}, errs.Mark(err, errs.ErrPersistence)
		}
	}

	return attemptOutcome{
		result: &CreateBookingResult{
			CustomerID:      customerID,
			BookingID:       bookingID,
			BookingCode:     b.Code(),
			Amount:          b.Amount(),
			PhotoReferences: b.PhotoReferences(),
		},
		confirmation: notify.BookingConfirmation{
			BookingID:   bookingID,
			BookingCode: b.Code(),
			CustomerID:  customerID,
			FullName:    req.FullName,
			Email:       req.Email.Value(),
			Phone:       req.Phone.Value(),
			Amount:      b.Amount(),
			BookedAt:    b.StartTime(),
		},
	}, nil
}

// createOrReuseCustomer inserts a new customer, unless phone dedupe is enabled
// and one already exists for the phone.
func (c *bookingCommandsImpl) createOrReuseCustomer(
	ctx context.Context,
	tx shared.Tx,
	req *BookingRequest,
	now time.Time,
) (uuid.UUID, error) {
	if c.opts.DedupeCustomerByPhone {
		existing, err := tx.Reads().CustomerByPhone(ctx, req.Phone.Value())
		switch {
		case err == nil:
			return existing.ID, nil
		case !infra.IsKind(err, infra.KindNotFound):
			return uuid.Nil, errs.Mark(err, errs.ErrPersistence)
		}
	}

	customer, err := booking.NewCustomer(booking.NewCustomerParams{
		ID:                   uuid.New(),
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		Coordinates:          req.Coordinates,
		IdentificationNumber: req.IdentificationNumber,
		CityName:             req.CityName,
		ProfilePicture:       c.avatars.Pick(),
	}, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := tx.Customers().Create(ctx, customer); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrPersistence)
	}
	return customer.ID(), nil
}

// resolveAddons looks every token up in the catalog. The first active add-on
// supplies the unit price; unknown tokens are kept without an add-on id.
func (c *bookingCommandsImpl) resolveAddons(
	ctx context.Context,
	tx shared.Tx,
	tokens []string,
) (*booking.Money, map[string]uuid.UUID, error) {
	var unitPrice *booking.Money
	resolved := make(map[string]uuid.UUID, len(tokens))

	for _, token := range tokens {
		if _, seen := resolved[token]; seen {
			continue
		}
		addon, err := tx.Reads().AddonByID(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, nil, errs.Mark(err, errs.ErrPersistence)
		}
		resolved[token] = addon.ID
		if unitPrice == nil {
			price := addon.UnitPrice
			unitPrice = &price
		}
	}
	return unitPrice, resolved, nil
}

func (c *bookingCommandsImpl) dispatch(ctx context.Context, job notify.BookingConfirmation) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "Notification dispatch panicked", "booking_id", job.BookingID, "panic", r)
		}
	}()
	c.notifier.Dispatch(job)
}

// classifyFailure labels an aborted workflow. An expired workflow deadline wins
// over whatever step happened to observe it.
func classifyFailure(ctx context.Context, err error) (string, error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return "validation", err
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "timeout", errs.Mark(err, errs.ErrTimeout)
	case errs.Is(err, errs.ErrStorage):
		return "storage", err
	case errs.Is(err, errs.ErrPersistence):
		return "persistence", err
	default:
		return "persistence", errs.Mark(err, errs.ErrPersistence)
	}
}
