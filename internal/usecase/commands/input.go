package commands

import (
	"math"
	"strconv"
	"strings"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultDurationHours = 6

// Layouts without an offset; the browser form sends local wall-clock time.
var localStartTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// CreateBookingInput is the raw booking form. All values arrive as text.
type CreateBookingInput struct {
	FullName             string
	Email                string
	Phone                string
	StorageUnitID        string
	StartTime            string
	Location             string
	Latitude             string
	Longitude            string
	Remark               string
	DurationHours        string
	Addons               string
	IdentificationNumber string
	CityName             string
}

// BookingRequest is a CreateBookingInput that passed validation.
type BookingRequest struct {
	FullName             string
	Email                booking.Email
	Phone                booking.Phone
	StorageUnitID        uuid.UUID
	StartTime            time.Time // zero means "now"
	Location             string
	Coordinates          *booking.Coordinates
	Remark               string
	Duration             booking.Duration
	AddonTokens          []string
	IdentificationNumber string
	CityName             string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid booking request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Validate parses every field and reports all failures at once. Start times
// without an offset are wall-clock times in loc (UTC when nil). The returned
// error is a *ValidationError marked with errs.ErrValidation.
func (in CreateBookingInput) Validate(loc *time.Location) (*BookingRequest, error) {
	if loc == nil {
		loc = time.UTC
	}
	verr := &ValidationError{}
	req := &BookingRequest{
		FullName:             strings.TrimSpace(in.FullName),
		Location:             strings.TrimSpace(in.Location),
		Remark:               strings.TrimSpace(in.Remark),
		AddonTokens:          booking.ParseAddonTokens(in.Addons),
		IdentificationNumber: strings.TrimSpace(in.IdentificationNumber),
		CityName:             strings.TrimSpace(in.CityName),
	}

	if req.FullName == "" {
		verr.add("full_name", "is required")
	}

	if email, err := booking.NewEmail(in.Email); err != nil {
		verr.add("email", "must be a valid email address")
	} else {
		req.Email = email
	}

	if phone, err := booking.NewPhone(in.Phone); err != nil {
		verr.add("phone", "must be at least 10 characters")
	} else {
		req.Phone = phone
	}

	if id, err := uuid.Parse(strings.TrimSpace(in.StorageUnitID)); err != nil || id == uuid.Nil {
		verr.add("storage_unit_id", "must be a valid storage unit id")
	} else {
		req.StorageUnitID = id
	}

	if req.Location == "" {
		verr.add("storage_booked_location", "is required")
	}
	if req.CityName == "" {
		req.CityName = req.Location
	}

	if raw := strings.TrimSpace(in.StartTime); raw != "" {
		start, ok := parseStartTime(raw, loc)
		if !ok {
			verr.add("booking_created_time", "must be an ISO 8601 timestamp")
		} else {
			req.StartTime = start
		}
	}

	req.Coordinates = parseCoordinates(in.Latitude, in.Longitude, verr)

	hours := defaultDurationHours
	if raw := strings.TrimSpace(in.DurationHours); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("luggage_time", "must be a whole number of hours")
			n = 0
		}
		hours = n
	}
	if d, err := booking.NewDuration(hours); err != nil {
		if !hasField(verr, "luggage_time") {
			verr.add("luggage_time", "must be between 1 and 720 hours")
		}
	} else {
		req.Duration = d
	}

	if len(verr.Fields) > 0 {
		return nil, errs.Mark(verr, errs.ErrValidation)
	}
	return req, nil
}

// Coordinates are optional, but a half-supplied or out-of-range pair is rejected.
func parseCoordinates(rawLat, rawLng string, verr *ValidationError) *booking.Coordinates {
	rawLat, rawLng = strings.TrimSpace(rawLat), strings.TrimSpace(rawLng)
	if rawLat == "" && rawLng == "" {
		return nil
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	if latErr != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		verr.add("latitude", "must be a number between -90 and 90")
	}
	lng, lngErr := strconv.ParseFloat(rawLng, 64)
	if lngErr != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
		verr.add("longitude", "must be a number between -180 and 180")
	}
	if latErr != nil || lngErr != nil {
		return nil
	}
	c, err := booking.NewCoordinates(lat, lng)
	if err != nil || math.IsNaN(lat) || math.IsNaN(lng) {
		return nil
	}
	return &c
}

func parseStartTime(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	for _, layout := range localStartTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func hasField(verr *ValidationError, field string) bool {
	for _, f := range verr.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
