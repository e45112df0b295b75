package jobs

import (
	"context"
	"log/slog"

	"shipdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DisputeSweepJob enforces the weight dispute response window.
// Runs every minute to auto-accept disputes the merchant never answered.
type DisputeSweepJob struct {
	handler commands.SweepExpiredDisputesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDisputeSweepJob creates a new job for sweeping expired disputes.
// Uses SweepExpiredDisputesCommandHandler to settle them once a minute.
func NewDisputeSweepJob(handler commands.SweepExpiredDisputesCommandHandler, logger *slog.Logger) *DisputeSweepJob {
	return &DisputeSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispute_sweep_job"),
	}
}

// Start begins the dispute sweep job to run every minute.
func (j *DisputeSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepExpiredDisputesCommand()

		settled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispute sweep job failed", "error", err)
			return
		}

		if settled > 0 {
			j.logger.InfoContext(ctx, "Auto-accepted expired weight disputes", "settled", settled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispute sweep job started (running every minute)")
	return nil
}

// Stop stops the dispute sweep job.
func (j *DisputeSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispute sweep job stopped")
}
