package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrAssignContainersCommandIsNotConstructed = errors.New(
	"AssignContainersCommand must be created via NewAssignContainersCommand constructor",
)

// AssignContainersCommand triggers the assignment of a waiting yard container
// to a suitable ship. This command represents the business operation of
// matching fleet capacity with cargo waiting in the yard. It takes the oldest
// container in the yard and loads it onto the ship with the most headroom.
//
// Example:
//
//	cmd := NewAssignContainersCommand()
//	handler := NewAssignContainersCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No containers to assign or no suitable ship: %v", err)
//	}
type AssignContainersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignContainersCommand creates a new command to trigger container assignment.
// This is a parameterless command that initiates the container-ship matching process.
func NewAssignContainersCommand() AssignContainersCommand {
	return AssignContainersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignContainersCommandIsNotConstructed if validation fails.
func (c *AssignContainersCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignContainersCommandIsNotConstructed,
	)
}
