package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"time"
	_ "time/tzdata"

	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/notify"
)

const (
	subjectPrefix   = "Storezee Booking Confirmed: "
	bookedAtLayout  = "02/01/2006, 3:04:05 pm"
	templateName    = "booking_confirmation.html"
	defaultTimeZone = "Asia/Kolkata"
)

//go:embed templates/*.html
var templateFS embed.FS

type Message struct {
	Subject string
	HTML    string
}

type templateData struct {
	FullName    string
	BookingCode string
	Phone       string
	Email       string
	Amount      string
	BookedAt    string
	Year        int
}

// Renderer turns a confirmation into subject and HTML body.
type Renderer struct {
	tmpl *template.Template
	loc  *time.Location
}

func NewRenderer(timeZone string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+templateName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse email template")
	}

	if timeZone == "" {
		timeZone = defaultTimeZone
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		slog.Warn("Unknown notification timezone, using UTC", "timezone", timeZone, "error", err)
		loc = time.UTC
	}

	return &Renderer{tmpl: tmpl, loc: loc}, nil
}

func (r *Renderer) Render(c notify.BookingConfirmation) (Message, error) {
	bookedAt := c.BookedAt.In(r.loc)

	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, templateName, templateData{
		FullName:    c.FullName,
		BookingCode: c.BookingCode,
		Phone:       c.Phone,
		Email:       c.Email,
		Amount:      c.Amount.String(),
		BookedAt:    bookedAt.Format(bookedAtLayout),
		Year:        bookedAt.Year(),
	})
	if err != nil {
		return Message{}, errs.Wrap(err, "failed to render email template")
	}

	return Message{
		Subject: subjectPrefix + c.BookingCode,
		HTML:    buf.String(),
	}, nil
}
