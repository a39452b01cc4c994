package mailer

import (
	"context"
	"log/slog"

	"storezee/internal/pkg/config"
	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/notify"

	"github.com/wneessen/go-mail"
)

const implicitTLSPort = 465

// SMTPSender delivers confirmations over SMTP. One connection per message.
type SMTPSender struct {
	cfg      config.SMTPConfig
	renderer *Renderer
}

func NewSMTPSender(cfg config.SMTPConfig, renderer *Renderer) *SMTPSender {
	return &SMTPSender{cfg: cfg, renderer: renderer}
}

func (s *SMTPSender) Send(ctx context.Context, c notify.BookingConfirmation) error {
	msg, err := s.buildMessage(c)
	if err != nil {
		return errs.Mark(err, errs.ErrNotification)
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to create SMTP client"), errs.ErrNotification)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Mark(errs.Wrapf(err, "failed to send confirmation for %s", c.BookingCode), errs.ErrNotification)
	}
	return nil
}

func (s *SMTPSender) buildMessage(c notify.BookingConfirmation) (*mail.Msg, error) {
	rendered, err := s.renderer.Render(c)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.FromAddress()); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(c.Email); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(rendered.Subject)
	msg.SetBodyString(mail.TypeTextHTML, rendered.HTML)
	return msg, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}
	if s.cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL(), mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

// LogSender stands in when no SMTP server is configured.
type LogSender struct {
	renderer *Renderer
}

func NewLogSender(renderer *Renderer) *LogSender {
	return &LogSender{renderer: renderer}
}

func (l *LogSender) Send(_ context.Context, c notify.BookingConfirmation) error {
	msg, err := l.renderer.Render(c)
	if err != nil {
		return errs.Mark(err, errs.ErrNotification)
	}
	slog.Info("SMTP not configured, confirmation logged only",
		"booking_id", c.BookingID,
		"to", c.Email,
		"subject", msg.Subject)
	return nil
}

// NewSender picks the SMTP sender when a host is configured.
func NewSender(cfg config.SMTPConfig, renderer *Renderer) notify.Sender {
	if cfg.Host == "" {
		return NewLogSender(renderer)
	}
	return NewSMTPSender(cfg, renderer)
}
