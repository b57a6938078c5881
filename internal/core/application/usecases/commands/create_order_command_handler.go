package commands

import (
	"context"
	"time"

	"webshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves every requested product against the catalog, captures its current
// name and price into the order lines, and persists the order in Pending
// status. Payment and confirmation happen later in order processing.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a clock for
// stamping the order date.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the order placement command.
// Each requested line is priced from the catalog at placement time, so later
// price changes never affect already placed orders.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	productRepo := uow.ProductRepository()

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		p, err := productRepo.Get(ctx, input.ProductID)
		if err != nil {
			return err
		}

		item, err := order.NewOrderItem(p.ID(), p.Name(), input.Quantity, p.Price())
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(),
		cmd.ShippingAddress(), items, h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
