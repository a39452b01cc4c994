package booking

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinPhoneLength {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

type Coordinates struct {
	latitude  float64
	longitude float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidLongitude
	}
	return Coordinates{latitude: lat, longitude: lng}, nil
}

func (c Coordinates) Latitude() float64  { return c.latitude }
func (c Coordinates) Longitude() float64 { return c.longitude }

// Duration is a whole number of booked hours.
type Duration struct {
	hours int
}

func NewDuration(hours int) (Duration, error) {
	if hours < MinDurationHours || hours > MaxDurationHours {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{hours: hours}, nil
}

func (d Duration) Hours() int { return d.hours }

func (d Duration) EndTime(start time.Time) time.Time {
	return start.Add(time.Duration(d.hours) * time.Hour)
}

func (d Duration) String() string { return strconv.Itoa(d.hours) }

// Money is a non-negative amount in minor units (paise).
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{minor: minor}, nil
}

func ZeroMoney() Money { return Money{} }

func (m Money) Minor() int64 { return m.minor }

func (m Money) IsZero() bool { return m.minor == 0 }

func (m Money) Mul(n int) Money {
	return Money{minor: m.minor * int64(n)}
}

// String renders major units, dropping the fraction when it is zero: 12000 -> "120", 12050 -> "120.50".
func (m Money) String() string {
	major, frac := m.minor/100, m.minor%100
	if frac == 0 {
		return strconv.FormatInt(major, 10)
	}
	return strconv.FormatInt(major, 10) + "." + leftPad2(frac)
}

// Decimal always renders two fractional digits: 12000 -> "120.00".
func (m Money) Decimal() string {
	return strconv.FormatInt(m.minor/100, 10) + "." + leftPad2(m.minor%100)
}

func leftPad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
