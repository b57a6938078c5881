package commands

import (
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand represents a request to run a pending order through the
// processing workflow: validation, payment, confirmation, notification.
//
// Example:
//
//	cmd, err := NewProcessOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrPaymentFailed) {
//	    // order was cancelled, customer was not notified
//	}
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process the given order.
func NewProcessOrderCommand(orderID kernel.UUID) (ProcessOrderCommand, error) {
	command := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ProcessOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to process.
func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProcessOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
