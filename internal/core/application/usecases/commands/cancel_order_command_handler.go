package commands

import (
	"context"

	"webshop/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation requests.
// Cancellation is only possible while the order is Pending or Confirmed;
// once fulfillment started the request fails with ErrOrderNotCancellable.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	orderService services.OrderService
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orderService services.OrderService,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		orderService: orderService,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cancelled, err := h.orderService.CancelOrder(ord)
	if err != nil {
		return err
	}

	if !cancelled {
		return ErrOrderNotCancellable
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
