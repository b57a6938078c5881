package commands

import (
	"errors"

	"webshop/internal/pkg/guard"
)

var ErrEscalateOverdueCasesCommandIsNotConstructed = errors.New(
	"EscalateOverdueCasesCommand must be created via NewEscalateOverdueCasesCommand constructor",
)

// EscalateOverdueCasesCommand triggers a sweep over all open cases,
// re-prioritizing them by age and escalating the ones that sat unattended
// past the high-priority threshold.
//
// Example:
//
//	cmd := NewEscalateOverdueCasesCommand()
//	handler := NewEscalateOverdueCasesCommandHandler(uowFactory, caseService, notifier, time.Now, logger)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("overdue case sweep failed: %v", err)
//	}
type EscalateOverdueCasesCommand struct {
	guard guard.ConstructorGuard
}

// NewEscalateOverdueCasesCommand creates a command to sweep open cases.
// This is a parameterless command that processes all open cases.
func NewEscalateOverdueCasesCommand() EscalateOverdueCasesCommand {
	return EscalateOverdueCasesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *EscalateOverdueCasesCommand) Validate() error {
	return c.guard.Validate(ErrEscalateOverdueCasesCommandIsNotConstructed)
}
