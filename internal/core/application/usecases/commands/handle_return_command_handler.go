package commands

import (
	"context"
	"log/slog"

	"webshop/internal/core/domain/services"
	"webshop/internal/core/ports"
)

// returnRejectionReason is the note recorded on every rejected return.
const returnRejectionReason = "Return window expired or order not delivered"

// HandleReturnCommandHandler orchestrates the return decision workflow:
//  1. Validate the return against its originating order: the order must be
//     delivered and the request must fall inside the 30-day window.
//  2. An invalid request rejects the return with a fixed reason and leaves
//     the associated case untouched. Rejection is a persisted outcome, not
//     an error.
//  3. A valid request approves the return, moves the associated case to
//     InProgress, and sends a return-approval notification after commit.
type HandleReturnCommandHandler struct {
	uowFactory          ReturnUoWFactory
	caseService         services.CaseService
	notificationService ports.NotificationService
	logger              *slog.Logger
}

// NewHandleReturnCommandHandler creates a handler for return decisions.
func NewHandleReturnCommandHandler(
	uowFactory ReturnUoWFactory,
	caseService services.CaseService,
	notificationService ports.NotificationService,
	logger *slog.Logger,
) HandleReturnCommandHandler {
	return HandleReturnCommandHandler{
		uowFactory:          uowFactory,
		caseService:         caseService,
		notificationService: notificationService,
		logger:              logger.With("component", "handle-return"),
	}
}

// Handle decides the return request.
func (h *HandleReturnCommandHandler) Handle(ctx context.Context, cmd HandleReturnCommand) error {
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

	returnRepo := uow.ReturnRepository()

	ret, err := returnRepo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, ret.OrderID())
	if err != nil {
		return err
	}

	if !h.caseService.ValidateReturnRequest(ret, ord) {
		if err = ret.Reject(returnRejectionReason); err != nil {
			return err
		}
		if err = returnRepo.Update(ctx, ret); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = ret.Approve(); err != nil {
		return err
	}

	if err = returnRepo.Update(ctx, ret); err != nil {
		return err
	}

	if caseID := ret.CaseID(); caseID != nil {
		caseRepo := uow.CaseRepository()

		c, caseErr := caseRepo.Get(ctx, *caseID)
		if caseErr != nil {
			return caseErr
		}

		if caseErr = c.StartProgress(); caseErr != nil {
			return caseErr
		}

		if caseErr = caseRepo.Update(ctx, c); caseErr != nil {
			return caseErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notificationService.SendReturnApproval(ctx, ret); err != nil {
		h.logger.Warn("return approval send failed",
			"returnNumber", ret.ReturnNumber(), "error", err)
	}

	return nil
}
