package commands

import (
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var ErrHandleReturnCommandIsNotConstructed = errors.New(
	"HandleReturnCommand must be created via NewHandleReturnCommand constructor",
)

// HandleReturnCommand represents a request to decide a requested return:
// approve it against the return window or reject it.
type HandleReturnCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHandleReturnCommand creates a command to decide the given return.
func NewHandleReturnCommand(returnID kernel.UUID) (HandleReturnCommand, error) {
	command := HandleReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setReturnID(returnID); err != nil {
		return HandleReturnCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HandleReturnCommand) Validate() error {
	return c.guard.Validate(ErrHandleReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to decide.
func (c HandleReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

func (c *HandleReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}
