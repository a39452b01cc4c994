package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"storezee/internal/infra/mailer"
	"storezee/internal/infra/notifyqueue"
	"storezee/internal/pkg/config"
	"storezee/internal/usecase/commands"
	"storezee/internal/usecase/notify"

	"go.uber.org/fx"
)

const redisPingTimeout = 3 * time.Second

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewRenderer,
		NewSender,
		NewDeadLetterStore,
		NewDispatcher,
		func(d *notify.Dispatcher) commands.NotificationDispatcher { return d },
	),
)

func NewRenderer(cfg config.Config) (*mailer.Renderer, error) {
	return mailer.NewRenderer(cfg.Booking.NotificationTimeZone)
}

func NewSender(cfg config.Config, renderer *mailer.Renderer) notify.Sender {
	if cfg.SMTP.Host == "" {
		slog.Warn("SMTP_SERVER not set, confirmations are logged only")
	}
	return mailer.NewSender(cfg.SMTP, renderer)
}

func NewDeadLetterStore(lc fx.Lifecycle, cfg config.Config) notify.DeadLetterStore {
	if cfg.Redis.Address == "" {
		return notifyqueue.LogDeadLetterStore{}
	}

	client := notifyqueue.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
			defer cancel()
			// dead letters are best effort, an unreachable Redis must not block startup
			if err := client.Ping(pingCtx).Err(); err != nil {
				slog.Warn("redis unreachable", "address", cfg.Redis.Address, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return notifyqueue.NewRedisDeadLetterStore(client)
}

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, sender notify.Sender, dead notify.DeadLetterStore) *notify.Dispatcher {
	d := notify.NewDispatcher(sender, dead, notify.Options{
		Workers:        cfg.Notify.Workers,
		QueueSize:      cfg.Notify.QueueSize,
		AttemptTimeout: cfg.Notify.AttemptTimeout,
		Retry: notify.RetryPolicy{
			MaxRetries:   cfg.Notify.MaxRetries,
			InitialDelay: cfg.Notify.InitialDelay,
			MaxDelay:     cfg.Notify.MaxDelay,
		},
	})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
