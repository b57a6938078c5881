package commands

import (
	"errors"
	"strings"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var (
	ErrResolveCaseCommandIsNotConstructed = errors.New(
		"ResolveCaseCommand must be created via NewResolveCaseCommand constructor",
	)
	ErrResolutionIsRequired = errors.New("resolution is required")
)

// ResolveCaseCommand represents a request to resolve a customer case with a
// resolution text.
type ResolveCaseCommand struct { //nolint:recvcheck //using for validation
	caseID     kernel.UUID
	resolution string

	guard guard.ConstructorGuard
}

// NewResolveCaseCommand creates a command to resolve the given case.
func NewResolveCaseCommand(caseID kernel.UUID, resolution string) (ResolveCaseCommand, error) {
	command := ResolveCaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaseID(caseID),
		command.setResolution(resolution),
	); err != nil {
		return ResolveCaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveCaseCommand) Validate() error {
	return c.guard.Validate(ErrResolveCaseCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to resolve.
func (c ResolveCaseCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Resolution returns the resolution text to record.
func (c ResolveCaseCommand) Resolution() string {
	return c.resolution
}

func (c *ResolveCaseCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}

func (c *ResolveCaseCommand) setResolution(resolution string) error {
	if strings.TrimSpace(resolution) == "" {
		return ErrResolutionIsRequired
	}

	c.resolution = resolution
	return nil
}
