package commands

import (
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var ErrProcessComplaintCommandIsNotConstructed = errors.New(
	"ProcessComplaintCommand must be created via NewProcessComplaintCommand constructor",
)

// ProcessComplaintCommand represents a request to triage a customer
// complaint case: prioritize it, escalate if required, and put it into
// active handling.
type ProcessComplaintCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessComplaintCommand creates a command to triage the given case.
func NewProcessComplaintCommand(caseID kernel.UUID) (ProcessComplaintCommand, error) {
	command := ProcessComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCaseID(caseID); err != nil {
		return ProcessComplaintCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessComplaintCommand) Validate() error {
	return c.guard.Validate(ErrProcessComplaintCommandIsNotConstructed)
}

// CaseID returns the identifier of the complaint case.
func (c ProcessComplaintCommand) CaseID() kernel.UUID {
	return c.caseID
}

func (c *ProcessComplaintCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}
