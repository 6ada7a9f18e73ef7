package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// YardAssignmentJob manages the scheduled loading of yard containers onto ships.
// Runs every five seconds to place waiting containers on ships with capacity.
type YardAssignmentJob struct {
	handler commands.AssignContainersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewYardAssignmentJob creates a new job for assigning yard containers.
// Uses AssignContainersCommandHandler to process assignments every five seconds.
func NewYardAssignmentJob(handler commands.AssignContainersCommandHandler, logger *slog.Logger) *YardAssignmentJob {
	return &YardAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "yard_assignment_job"),
	}
}

// Start begins the yard assignment job to run every five seconds.
func (j *YardAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignContainersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoContainersInYard) && !errors.Is(err, commands.ErrNoSuitableShip) {
				j.logger.ErrorContext(ctx, "Yard assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Yard assignment job started (running every five seconds)")
	return nil
}

// Stop stops the yard assignment job.
func (j *YardAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Yard assignment job stopped")
}
