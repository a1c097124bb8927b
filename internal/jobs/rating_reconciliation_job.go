package jobs

import (
	"context"
	"log/slog"

	"deliverymarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RatingReconciliationJob periodically recomputes all restaurant and driver
// ratings from the review table. Ratings are updated per review at write
// time, so the sweep only needs to run occasionally to repair drift.
type RatingReconciliationJob struct {
	handler commands.ReconcileRatingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRatingReconciliationJob creates a job for the rating reconciliation sweep.
func NewRatingReconciliationJob(
	handler commands.ReconcileRatingsCommandHandler,
	logger *slog.Logger,
) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rating_reconciliation_job"),
	}
}

// Start begins the reconciliation job, running every five minutes.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileRatingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started (running every five minutes)")
	return nil
}

// Stop stops the reconciliation job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
