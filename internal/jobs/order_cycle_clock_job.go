package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCycleClockJob advances order cycle trading windows on schedule.
// Runs every minute to open cycles whose window has started and close
// cycles whose window has ended.
type OrderCycleClockJob struct {
	handler commands.AdvanceOrderCyclesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderCycleClockJob creates the cycle clock job.
// Uses AdvanceOrderCyclesCommandHandler to process due window transitions.
func NewOrderCycleClockJob(handler commands.AdvanceOrderCyclesCommandHandler, logger *slog.Logger) *OrderCycleClockJob {
	return &OrderCycleClockJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_cycle_clock_job"),
	}
}

// Start begins the cycle clock job to run every minute.
func (j *OrderCycleClockJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewAdvanceOrderCyclesCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order cycle clock job failed to build command", "error", err)
			return
		}

		opened, closed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order cycle clock job failed", "error", err)
			return
		}

		if opened > 0 || closed > 0 {
			j.logger.InfoContext(ctx, "Order cycle windows advanced",
				"opened", opened, "closed", closed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order cycle clock job started (running every minute)")
	return nil
}

// Stop stops the cycle clock job.
func (j *OrderCycleClockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order cycle clock job stopped")
}
