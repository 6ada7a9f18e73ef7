package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	yardAssignmentJob *YardAssignmentJob
	fleetReportJob    *FleetReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	assignContainersHandler commands.AssignContainersCommandHandler,
	getAllShipsHandler queries.GetAllShipsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		yardAssignmentJob: NewYardAssignmentJob(assignContainersHandler, logger),
		fleetReportJob:    NewFleetReportJob(getAllShipsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.yardAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start yard assignment job: %w", err)
	}

	if err := jm.fleetReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.yardAssignmentJob.Stop()
		return fmt.Errorf("failed to start fleet report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetReportJob.Stop()
	jm.yardAssignmentJob.Stop()
}
