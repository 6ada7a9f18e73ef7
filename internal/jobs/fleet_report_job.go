package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// FleetReportJob periodically logs the state of the fleet.
// Runs every thirty seconds and reports each ship's occupancy and cargo weight.
type FleetReportJob struct {
	handler queries.GetAllShipsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFleetReportJob creates a new job for fleet state reporting.
// Uses GetAllShipsQueryHandler to read the fleet every thirty seconds.
func NewFleetReportJob(handler queries.GetAllShipsQueryHandler, logger *slog.Logger) *FleetReportJob {
	return &FleetReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fleet_report_job"),
	}
}

// Start begins the fleet report job to run every thirty seconds.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAllShipsQuery()

		ships, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fleet report job failed", "error", err)
			return
		}

		for _, ship := range ships {
			j.logger.InfoContext(ctx, "Fleet report",
				"ship", ship.Name,
				"containers", ship.ContainerCount,
				"maxContainers", ship.MaxContainerCount,
				"totalWeightKg", ship.TotalWeight,
				"maxTotalWeightT", ship.MaxTotalWeight,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started (running every thirty seconds)")
	return nil
}

// Stop stops the fleet report job.
func (j *FleetReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}
