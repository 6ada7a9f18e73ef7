// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the freight service.
//
// # Available Jobs
//
// 1. YardAssignmentJob - Runs every five seconds to load waiting yard containers onto ships with capacity
// 2. FleetReportJob - Runs every thirty seconds to log each ship's occupancy and cargo weight
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignContainersHandler, getAllShipsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "*/5 * * * * *" (every five seconds)
// so containers arriving in the yard are placed on ships promptly. The report job
// uses "*/30 * * * * *" as its output is informational.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (empty yard, no ship with capacity)
// - Report job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
