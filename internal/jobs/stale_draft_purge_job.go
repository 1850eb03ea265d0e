package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDraftPurger is implemented by commands.PurgeStaleDraftsCommandHandler.
type StaleDraftPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeStaleDraftsCommand) (int64, error)
}

// StaleDraftPurgeConfig controls when the purge runs and which drafts count as stale.
type StaleDraftPurgeConfig struct {
	// Schedule is a cron expression with seconds, e.g. "0 */10 * * * *".
	Schedule string
	// TTL is how long a draft may stay untouched before it is deleted.
	TTL time.Duration
}

// StaleDraftPurgeJob periodically deletes abandoned drafts.
type StaleDraftPurgeJob struct {
	handler  StaleDraftPurger
	schedule string
	cmd      commands.PurgeStaleDraftsCommand
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleDraftPurgeJob fails when TTL is not positive.
func NewStaleDraftPurgeJob(handler StaleDraftPurger, config StaleDraftPurgeConfig, logger *slog.Logger) (*StaleDraftPurgeJob, error) {
	cmd, err := commands.NewPurgeStaleDraftsCommand(config.TTL)
	if err != nil {
		return nil, fmt.Errorf("stale draft ttl: %w", err)
	}

	return &StaleDraftPurgeJob{
		handler:  handler,
		schedule: config.Schedule,
		cmd:      cmd,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_draft_purge_job"),
	}, nil
}

// Start registers the job on its schedule and starts the scheduler.
func (j *StaleDraftPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft purge job started",
		"schedule", j.schedule, "ttl", j.cmd.OlderThan().String())
	return nil
}

// Run performs a single purge.
func (j *StaleDraftPurgeJob) Run(ctx context.Context) error {
	deleted, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale draft purge failed", "error", err)
		return err
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Stale drafts purged", "deleted", deleted)
	}
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *StaleDraftPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale draft purge job stopped")
}
