package jobs

import (
	"fmt"
	"log/slog"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	caseEscalationJob *CaseEscalationJob
	lowStockReportJob *LowStockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	escalateOverdueCasesHandler commands.EscalateOverdueCasesCommandHandler,
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		caseEscalationJob: NewCaseEscalationJob(escalateOverdueCasesHandler, logger),
		lowStockReportJob: NewLowStockReportJob(getLowStockProductsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.caseEscalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start case escalation job: %w", err)
	}

	if err := jm.lowStockReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.caseEscalationJob.Stop()
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
	jm.caseEscalationJob.Stop()
}
