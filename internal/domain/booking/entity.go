package booking

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	id                   uuid.UUID
	fullName             string
	email                Email
	phone                Phone
	role                 string
	coordinates          *Coordinates
	identificationNumber string
	cityName             string
	profilePicture       string
	verified             bool
	createdAt            time.Time
}

type NewCustomerParams struct {
	ID                   uuid.UUID
	FullName             string
	Email                Email
	Phone                Phone
	Coordinates          *Coordinates
	IdentificationNumber string
	CityName             string
	ProfilePicture       string
}

func NewCustomer(p NewCustomerParams, now time.Time) (*Customer, error) {
	name := strings.TrimSpace(p.FullName)
	if name == "" {
		return nil, ErrEmptyFullName
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Customer{
		id:                   id,
		fullName:             name,
		email:                p.Email,
		phone:                p.Phone,
		role:                 RoleUser,
		coordinates:          p.Coordinates,
		identificationNumber: strings.TrimSpace(p.IdentificationNumber),
		cityName:             p.CityName,
		profilePicture:       p.ProfilePicture,
		verified:             true,
		createdAt:            now,
	}, nil
}

func (c *Customer) ID() uuid.UUID                { return c.id }
func (c *Customer) FullName() string             { return c.fullName }
func (c *Customer) Email() Email                 { return c.email }
func (c *Customer) Phone() Phone                 { return c.phone }
func (c *Customer) Role() string                 { return c.role }
func (c *Customer) Coordinates() *Coordinates    { return c.coordinates }
func (c *Customer) IdentificationNumber() string { return c.identificationNumber }
func (c *Customer) CityName() string             { return c.cityName }
func (c *Customer) ProfilePicture() string       { return c.profilePicture }
func (c *Customer) Verified() bool               { return c.verified }
func (c *Customer) CreatedAt() time.Time         { return c.createdAt }

// IdentityDocument is always recorded; an empty reference means no file or a failed upload.
type IdentityDocument struct {
	customerID   uuid.UUID
	originalName string
	reference    string
	createdAt    time.Time
}

func NewIdentityDocument(customerID uuid.UUID, originalName, reference string, now time.Time) (*IdentityDocument, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	return &IdentityDocument{
		customerID:   customerID,
		originalName: originalName,
		reference:    reference,
		createdAt:    now,
	}, nil
}

func (d *IdentityDocument) CustomerID() uuid.UUID { return d.customerID }
func (d *IdentityDocument) OriginalName() string  { return d.originalName }
func (d *IdentityDocument) Reference() string     { return d.reference }
func (d *IdentityDocument) CreatedAt() time.Time  { return d.createdAt }

type Booking struct {
	id              uuid.UUID
	code            string
	kind            string
	startTime       time.Time
	endTime         time.Time
	status          string
	photoReferences []string
	customerID      uuid.UUID
	storageUnitID   uuid.UUID
	location        string
	coordinates     *Coordinates
	remark          string
	amount          Money
	paymentStatus   string
	duration        Duration
	lastUpdatedBy   string
	createdAt       time.Time
}

type NewBookingParams struct {
	ID              uuid.UUID
	Code            string
	StartTime       time.Time
	Duration        Duration
	PhotoReferences []string
	CustomerID      uuid.UUID
	StorageUnitID   uuid.UUID
	Location        string
	Coordinates     *Coordinates
	Remark          string
	Amount          Money
}

func NewBooking(p NewBookingParams, now time.Time) (*Booking, error) {
	if p.CustomerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if p.StorageUnitID == uuid.Nil {
		return nil, ErrMissingStorageUnit
	}
	if strings.TrimSpace(p.Location) == "" {
		return nil, ErrEmptyLocation
	}
	if p.Duration.Hours() < MinDurationHours {
		return nil, ErrInvalidDuration
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	code := p.Code
	if code == "" {
		code = NewBookingCode(uuid.New())
	}
	start := p.StartTime
	if start.IsZero() {
		start = now
	}

	refs := make([]string, len(p.PhotoReferences))
	copy(refs, p.PhotoReferences)

	return &Booking{
		id:              id,
		code:            code,
		kind:            KindHourly,
		startTime:       start,
		endTime:         p.Duration.EndTime(start),
		status:          StatusConfirmed,
		photoReferences: refs,
		customerID:      p.CustomerID,
		storageUnitID:   p.StorageUnitID,
		location:        p.Location,
		coordinates:     p.Coordinates,
		remark:          p.Remark,
		amount:          p.Amount,
		paymentStatus:   PaymentStatusPending,
		duration:        p.Duration,
		lastUpdatedBy:   UpdatedBySystem,
		createdAt:       now,
	}, nil
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) Code() string              { return b.code }
func (b *Booking) Kind() string              { return b.kind }
func (b *Booking) StartTime() time.Time      { return b.startTime }
func (b *Booking) EndTime() time.Time        { return b.endTime }
func (b *Booking) Status() string            { return b.status }
func (b *Booking) CustomerID() uuid.UUID     { return b.customerID }
func (b *Booking) StorageUnitID() uuid.UUID  { return b.storageUnitID }
func (b *Booking) Location() string          { return b.location }
func (b *Booking) Coordinates() *Coordinates { return b.coordinates }
func (b *Booking) Remark() string            { return b.remark }
func (b *Booking) Amount() Money             { return b.amount }
func (b *Booking) PaymentStatus() string     { return b.paymentStatus }
func (b *Booking) Duration() Duration        { return b.duration }
func (b *Booking) LastUpdatedBy() string     { return b.lastUpdatedBy }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }

func (b *Booking) PhotoReferences() []string {
	refs := make([]string, len(b.photoReferences))
	copy(refs, b.photoReferences)
	return refs
}

// PrimaryPhoto is the first photo reference, or empty when none were uploaded.
func (b *Booking) PrimaryPhoto() string {
	if len(b.photoReferences) == 0 {
		return ""
	}
	return b.photoReferences[0]
}

// PhotoReferencesJSON serializes the ordered references; no photos encode as [].
func (b *Booking) PhotoReferencesJSON() ([]byte, error) {
	refs := b.photoReferences
	if refs == nil {
		refs = []string{}
	}
	return json.Marshal(refs)
}

type AddonAssociation struct {
	id        uuid.UUID
	bookingID uuid.UUID
	token     string
	addonID   *uuid.UUID
	createdAt time.Time
}

// NewAddonAssociations links one row per token; tokens are expected to come from ParseAddonTokens.
func NewAddonAssociations(bookingID uuid.UUID, tokens []string, now time.Time) []*AddonAssociation {
	out := make([]*AddonAssociation, 0, len(tokens))
	for _, t := range tokens {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, &AddonAssociation{
			id:        uuid.New(),
			bookingID: bookingID,
			token:     t,
			createdAt: now,
		})
	}
	return out
}

func (a *AddonAssociation) ID() uuid.UUID        { return a.id }
func (a *AddonAssociation) BookingID() uuid.UUID { return a.bookingID }
func (a *AddonAssociation) Token() string        { return a.token }
func (a *AddonAssociation) CreatedAt() time.Time { return a.createdAt }

// AddonID is set only when the token matched a catalog add-on.
func (a *AddonAssociation) AddonID() *uuid.UUID { return a.addonID }

func (a *AddonAssociation) ResolveTo(addonID uuid.UUID) {
	a.addonID = &addonID
}
