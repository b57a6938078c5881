package commands

import (
	"context"
	"log/slog"
	"time"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/services"
	"webshop/internal/core/ports"
)

// overdueCaseAge is how long a case may stay open before the sweep
// escalates it.
const overdueCaseAge = 48 * time.Hour

// EscalateOverdueCasesCommandHandler sweeps all open cases: each one is
// re-prioritized by type and age, and cases open for more than 48 hours are
// escalated with a staff alert. An already higher priority is kept, so a case
// marked Critical by an agent is never downgraded by the age rules. All
// mutations happen in one transaction; alerts go out after the commit.
type EscalateOverdueCasesCommandHandler struct {
	uowFactory          CaseUoWFactory
	caseService         services.CaseService
	notificationService ports.NotificationService
	now                 func() time.Time
	logger              *slog.Logger
}

// NewEscalateOverdueCasesCommandHandler creates a handler for the overdue
// case sweep.
func NewEscalateOverdueCasesCommandHandler(
	uowFactory CaseUoWFactory,
	caseService services.CaseService,
	notificationService ports.NotificationService,
	now func() time.Time,
	logger *slog.Logger,
) EscalateOverdueCasesCommandHandler {
	return EscalateOverdueCasesCommandHandler{
		uowFactory:          uowFactory,
		caseService:         caseService,
		notificationService: notificationService,
		now:                 now,
		logger:              logger.With("component", "escalate-overdue-cases"),
	}
}

// Handle processes the sweep command.
func (h *EscalateOverdueCasesCommandHandler) Handle(ctx context.Context, cmd EscalateOverdueCasesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caseRepo := uow.CaseRepository()

	openCases, err := caseRepo.GetAllInOpenStatus(ctx)
	if err != nil {
		return err
	}

	escalatedCases := make([]*casefile.Case, 0, len(openCases))
	for _, c := range openCases {
		priority := h.caseService.DeterminePriority(c)
		if !c.Priority().IsAtLeast(priority) {
			if err = c.Prioritize(priority); err != nil {
				return err
			}
		}

		if c.Age(h.now()) > overdueCaseAge {
			if err = c.Escalate(); err != nil {
				return err
			}
			escalatedCases = append(escalatedCases, c)
		}

		if err = caseRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, c := range escalatedCases {
		if err = h.notificationService.SendEscalationAlert(ctx, c); err != nil {
			h.logger.Warn("escalation alert send failed",
				"caseNumber", c.CaseNumber(), "error", err)
		}
	}

	if len(escalatedCases) > 0 {
		h.logger.Info("overdue cases escalated", "count", len(escalatedCases))
	}

	return nil
}
