package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"webshop/internal/core/ports"
)

// ResolveCaseCommandHandler records a resolution on a case and notifies the
// customer with a status update. The case must be in a non-terminal status.
type ResolveCaseCommandHandler struct {
	uowFactory          CaseUoWFactory
	notificationService ports.NotificationService
	now                 func() time.Time
	logger              *slog.Logger
}

// NewResolveCaseCommandHandler creates a handler for case resolution.
func NewResolveCaseCommandHandler(
	uowFactory CaseUoWFactory,
	notificationService ports.NotificationService,
	now func() time.Time,
	logger *slog.Logger,
) ResolveCaseCommandHandler {
	return ResolveCaseCommandHandler{
		uowFactory:          uowFactory,
		notificationService: notificationService,
		now:                 now,
		logger:              logger.With("component", "resolve-case"),
	}
}

// Handle resolves the case and sends a status update to the customer.
func (h *ResolveCaseCommandHandler) Handle(ctx context.Context, cmd ResolveCaseCommand) error {
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

	if err = c.Resolve(cmd.Resolution(), h.now()); err != nil {
		return err
	}

	if err = caseRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	message := fmt.Sprintf("Your case %s has been resolved: %s", c.CaseNumber(), c.Resolution())
	if err = h.notificationService.SendStatusUpdate(ctx, c.CustomerID(), message); err != nil {
		h.logger.Warn("status update send failed",
			"caseNumber", c.CaseNumber(), "error", err)
	}

	return nil
}
