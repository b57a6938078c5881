package commands

import (
	"context"
	"log/slog"

	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/services"
	"webshop/internal/core/ports"
)

// ProcessOrderCommandHandler orchestrates the order processing workflow:
//  1. Validate the order against the current product catalog; an invalid
//     order aborts with ErrInvalidOrder before anything else happens.
//  2. Charge the customer through the payment gateway. A declined charge
//     cancels the order, persists the cancellation, and surfaces
//     ErrPaymentFailed; the customer is not notified on this path.
//  3. On success the order is confirmed and persisted, the customer's
//     informational discount is reported, and the order confirmation is
//     sent. A failed send is logged and never rolls the confirmed order
//     back.
//
// Re-processing is rejected: only orders still in Pending status are accepted.
type ProcessOrderCommandHandler struct {
	uowFactory          OrderUoWFactory
	orderService        services.OrderService
	paymentGateway      ports.PaymentGateway
	notificationService ports.NotificationService
	logger              *slog.Logger
}

// NewProcessOrderCommandHandler creates a handler for order processing.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orderService services.OrderService,
	paymentGateway ports.PaymentGateway,
	notificationService ports.NotificationService,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory:          uowFactory,
		orderService:        orderService,
		paymentGateway:      paymentGateway,
		notificationService: notificationService,
		logger:              logger.With("component", "process-order"),
	}
}

// Handle processes the order through validation, payment, and confirmation.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
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

	if ord.Status() != order.StatusPending {
		return ErrOrderAlreadyProcessed
	}

	availableProducts, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	if !h.orderService.ValidateOrder(ord, availableProducts) {
		return ErrInvalidOrder
	}

	paid, err := h.paymentGateway.ProcessPayment(ctx, ord.CustomerID(), ord.TotalAmount())
	if err != nil {
		return err
	}

	if !paid {
		if err = ord.Cancel(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return ErrPaymentFailed
	}

	if err = ord.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	buyer, err := uow.CustomerRepository().Get(ctx, ord.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The discount is informational: it is reported with the confirmation
	// but never changes what was charged.
	discount, discountErr := h.orderService.CalculateDiscount(ord, buyer.IsVIP())
	if discountErr != nil {
		h.logger.Warn("discount calculation failed",
			"orderNumber", ord.OrderNumber().Value(), "error", discountErr)
	} else {
		h.logger.Info("order confirmed",
			"orderNumber", ord.OrderNumber().Value(),
			"customerType", buyer.Type().String(),
			"eligibleDiscount", discount.String())
	}

	// The order stays confirmed even when the confirmation cannot be sent.
	if err = h.notificationService.SendOrderConfirmation(ctx, ord); err != nil {
		h.logger.Warn("order confirmation send failed",
			"orderNumber", ord.OrderNumber().Value(), "error", err)
	}

	return nil
}
