package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleCartPurgeJob removes abandoned carts on schedule. Runs daily at 03:00
// and deletes cart-state orders older than the configured retention.
type StaleCartPurgeJob struct {
	handler   commands.PurgeStaleCartsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleCartPurgeJob creates the cart purge job. Retention is how long an
// untouched cart is kept before it is considered abandoned.
func NewStaleCartPurgeJob(
	handler commands.PurgeStaleCartsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *StaleCartPurgeJob {
	return &StaleCartPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_cart_purge_job"),
	}
}

// Start begins the cart purge job to run daily at 03:00.
func (j *StaleCartPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeStaleCartsCommand(time.Now().UTC().Add(-j.retention))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale cart purge job failed to build command", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale cart purge job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Stale carts purged", "purged", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale cart purge job started (running daily at 03:00)")
	return nil
}

// Stop stops the cart purge job.
func (j *StaleCartPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale cart purge job stopped")
}
