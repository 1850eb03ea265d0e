package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs of the sales service.
type JobManager struct {
	staleDraftPurgeJob *StaleDraftPurgeJob
}

// NewJobManager fails when a job configuration is invalid.
func NewJobManager(
	purger StaleDraftPurger,
	purgeConfig StaleDraftPurgeConfig,
	logger *slog.Logger,
) (*JobManager, error) {
	purgeJob, err := NewStaleDraftPurgeJob(purger, purgeConfig, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{
		staleDraftPurgeJob: purgeJob,
	}, nil
}

// StartAll registers every job with its scheduler, e.g. an unparsable
// cron schedule is reported here.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDraftPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale draft purge job: %w", err)
	}

	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.staleDraftPurgeJob.Stop()
}
