package jobs

import (
	"context"
	"log/slog"

	"webshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CaseEscalationJob periodically sweeps open support cases.
// Runs every minute to re-prioritize cases by age and escalate overdue ones.
type CaseEscalationJob struct {
	handler commands.EscalateOverdueCasesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCaseEscalationJob creates a new job for escalating overdue cases.
// Uses EscalateOverdueCasesCommandHandler to run the sweep every minute.
func NewCaseEscalationJob(handler commands.EscalateOverdueCasesCommandHandler, logger *slog.Logger) *CaseEscalationJob {
	return &CaseEscalationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "case_escalation_job"),
	}
}

// Start begins the case escalation job to run every minute.
func (j *CaseEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewEscalateOverdueCasesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Case escalation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Case escalation job started (running every minute)")
	return nil
}

// Stop stops the case escalation job.
func (j *CaseEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Case escalation job stopped")
}
