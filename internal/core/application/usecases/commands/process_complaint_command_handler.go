package commands

import (
	"context"
	"log/slog"

	"webshop/internal/core/domain/services"
	"webshop/internal/core/ports"
)

// ProcessComplaintCommandHandler orchestrates complaint triage:
//  1. Compute the case priority from its type and age and assign it. An
//     already higher priority is kept, so a case marked Critical by an agent
//     is never downgraded by the age rules.
//  2. Escalate when the case is open and critical; an escalation sends an
//     alert to staff after commit.
//  3. Unconditionally move the case to InProgress. Note that this also
//     applies to a case escalated in step 2: the escalation is recorded in
//     the alert, but the final status is InProgress. This mirrors the shop's
//     long-standing triage behavior; changing it needs a product decision.
type ProcessComplaintCommandHandler struct {
	uowFactory          CaseUoWFactory
	caseService         services.CaseService
	notificationService ports.NotificationService
	logger              *slog.Logger
}

// NewProcessComplaintCommandHandler creates a handler for complaint triage.
func NewProcessComplaintCommandHandler(
	uowFactory CaseUoWFactory,
	caseService services.CaseService,
	notificationService ports.NotificationService,
	logger *slog.Logger,
) ProcessComplaintCommandHandler {
	return ProcessComplaintCommandHandler{
		uowFactory:          uowFactory,
		caseService:         caseService,
		notificationService: notificationService,
		logger:              logger.With("component", "process-complaint"),
	}
}

// Handle triages the complaint case.
func (h *ProcessComplaintCommandHandler) Handle(ctx context.Context, cmd ProcessComplaintCommand) error {
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

	c, err := caseRepo.Get(ctx, cmd.CaseID())
	if err != nil {
		return err
	}

	priority := h.caseService.DeterminePriority(c)
	if !c.Priority().IsAtLeast(priority) {
		if err = c.Prioritize(priority); err != nil {
			return err
		}
	}

	escalated, err := h.caseService.EscalateIfNeeded(c)
	if err != nil {
		return err
	}

	if err = c.StartProgress(); err != nil {
		return err
	}

	if err = caseRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if escalated {
		if err = h.notificationService.SendEscalationAlert(ctx, c); err != nil {
			h.logger.Warn("escalation alert send failed",
				"caseNumber", c.CaseNumber(), "error", err)
		}
	}

	return nil
}
