// Package jobs provides scheduled background tasks for the sales service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleDraftPurgeJob - deletes draft orders nobody updated within the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(purgeHandler, jobs.StaleDraftPurgeConfig{
//		Schedule: "0 */10 * * * *",
//		TTL:      72 * time.Hour,
//	}, logger)
//	if err != nil {
//		log.Fatal("Invalid job configuration:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick.
package jobs
