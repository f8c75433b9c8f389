package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeDeliveredOrdersJob removes delivered orders that have aged past the
// retention window, keeping the orders table bounded to the shop's working
// set.
type PurgeDeliveredOrdersJob struct {
	handler   commands.PurgeDeliveredOrdersCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPurgeDeliveredOrdersJob creates a new purge job. The schedule is a
// six-field cron expression; retention is how long delivered orders are
// kept before removal.
func NewPurgeDeliveredOrdersJob(
	handler commands.PurgeDeliveredOrdersCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeDeliveredOrdersJob {
	return &PurgeDeliveredOrdersJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "purge_delivered_orders_job"),
	}
}

// Start begins the purge job on its configured schedule.
func (j *PurgeDeliveredOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeDeliveredOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Purge delivered orders job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Purge delivered orders job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged delivered orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge delivered orders job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *PurgeDeliveredOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge delivered orders job stopped")
}
