package commands

import (
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItemInput is a requested order line: which product and how many units.
// Prices and product names are resolved from the catalog by the handler.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  kernel.Quantity
}

// CreateOrderCommand represents a request to place a new order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, address, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	shippingAddress kernel.Address
	items           []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the shipping address, and that at least one item
// with a constructed product ID and quantity is requested.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	shippingAddress kernel.Address,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setShippingAddress(shippingAddress),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() kernel.Address {
	return c.shippingAddress
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress kernel.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if err := item.Quantity.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
