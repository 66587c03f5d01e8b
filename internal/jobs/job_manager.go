package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStateReportJob *OrderStateReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	summaryHandler OrderStateSummaryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStateReportJob: NewOrderStateReportJob(summaryHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStateReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order state report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStateReportJob.Stop()
}
