package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/pandodao/money-tracker/service/session"
)

type Config struct {
	// Interval between two refreshes, zero disables the worker.
	Interval time.Duration
}

// Refresher keeps the active user's balances current while the server runs.
type Refresher struct {
	session *session.Session
	logger  *slog.Logger
	cfg     Config
}

func New(
	session *session.Session,
	logger *slog.Logger,
	cfg Config,
) *Refresher {
	if cfg.Interval < 0 {
		panic("refresher: negative interval")
	}

	return &Refresher{
		session: session,
		logger:  logger.With("worker", "refresher"),
		cfg:     cfg,
	}
}

func (w *Refresher) Run(ctx context.Context) error {
	if w.cfg.Interval == 0 {
		w.logger.Info("refresher disabled")
		return nil
	}

	w.logger.Info("refresher start", "interval", w.cfg.Interval)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = w.run(ctx)
		}
	}
}

func (w *Refresher) run(ctx context.Context) error {
	if w.session.State() != session.Active {
		return nil
	}

	if err := w.session.Refresh(ctx); err != nil {
		w.logger.Error("session.Refresh", "err", err)
		return err
	}

	return nil
}
