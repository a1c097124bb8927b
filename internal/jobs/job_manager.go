// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"deliverymarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	ratingReconciliationJob *RatingReconciliationJob
}

// NewJobManager creates a job manager wired to the given command handlers.
func NewJobManager(
	reconcileRatingsHandler commands.ReconcileRatingsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ratingReconciliationJob: NewRatingReconciliationJob(reconcileRatingsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.ratingReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start rating reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ratingReconciliationJob.Stop()
}
