//go:build unit

package mailer_test

import (
	"context"
	"testing"
	"time"

	"storezee/internal/domain/booking"
	"storezee/internal/infra/mailer"
	"storezee/internal/pkg/config"
	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfirmation(t *testing.T) notify.BookingConfirmation {
	t.Helper()
	amount, err := booking.NewMoney(12000)
	require.NoError(t, err)
	return notify.BookingConfirmation{
		BookingID:   uuid.New(),
		BookingCode: "BK1A2B3C4D5E",
		CustomerID:  uuid.New(),
		FullName:    "Jane <Doe>",
		Email:       "jane@example.com",
		Phone:       "9876543210",
		Amount:      amount,
		// 09:30 UTC is 15:00 in Asia/Kolkata.
		BookedAt: time.Date(2026, 10, 14, 9, 30, 5, 0, time.UTC),
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := mailer.NewRenderer("Asia/Kolkata")
	require.NoError(t, err)

	msg, err := r.Render(sampleConfirmation(t))
	require.NoError(t, err)

	assert.Equal(t, "Storezee Booking Confirmed: BK1A2B3C4D5E", msg.Subject)
	assert.Contains(t, msg.HTML, "Your Booking is Confirmed")
	assert.Contains(t, msg.HTML, "<strong>Jane &lt;Doe&gt;</strong>")
	assert.Contains(t, msg.HTML, "BK1A2B3C4D5E")
	assert.Contains(t, msg.HTML, "9876543210")
	assert.Contains(t, msg.HTML, "jane@example.com")
	assert.Contains(t, msg.HTML, "₹120")
	assert.Contains(t, msg.HTML, "14/10/2026, 3:00:05 pm")
	assert.Contains(t, msg.HTML, "Storezee &copy; 2026")
}

func TestRenderer_UnknownTimeZoneFallsBackToUTC(t *testing.T) {
	r, err := mailer.NewRenderer("Mars/Olympus")
	require.NoError(t, err)

	msg, err := r.Render(sampleConfirmation(t))
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "14/10/2026, 9:30:05 am")
}

func TestNewSender_SelectsByHost(t *testing.T) {
	r, err := mailer.NewRenderer("")
	require.NoError(t, err)

	assert.IsType(t, &mailer.LogSender{}, mailer.NewSender(config.SMTPConfig{}, r))
	assert.IsType(t, &mailer.SMTPSender{}, mailer.NewSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, r))
}

func TestLogSender_Send(t *testing.T) {
	r, err := mailer.NewRenderer("")
	require.NoError(t, err)

	assert.NoError(t, mailer.NewLogSender(r).Send(context.Background(), sampleConfirmation(t)))
}

func TestSMTPSender_InvalidRecipientIsNotificationError(t *testing.T) {
	r, err := mailer.NewRenderer("")
	require.NoError(t, err)

	sender := mailer.NewSMTPSender(config.SMTPConfig{Host: "127.0.0.1", Port: 2525, Username: "bot@example.com", Timeout: time.Second}, r)
	c := sampleConfirmation(t)
	c.Email = "not an address"

	err = sender.Send(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotification))
}

func TestSMTPSender_UnreachableServerIsNotificationError(t *testing.T) {
	r, err := mailer.NewRenderer("")
	require.NoError(t, err)

	sender := mailer.NewSMTPSender(config.SMTPConfig{Host: "127.0.0.1", Port: 1, Username: "bot@example.com", Timeout: 200 * time.Millisecond}, r)

	err = sender.Send(context.Background(), sampleConfirmation(t))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotification))
}
