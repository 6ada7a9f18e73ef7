package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUnloadContainerCommandIsNotConstructed = errors.New(
	"UnloadContainerCommand must be created via NewUnloadContainerCommand constructor",
)

// UnloadContainerCommand represents a request to unload a container from a
// ship back into the yard. The container is addressed by its serial number.
//
// Example:
//
//	serial, _ := kernel.SerialNumberFromString("KON-L-7")
//	cmd, err := NewUnloadContainerCommand(shipID, serial)
//	if err != nil {
//	    return fmt.Errorf("invalid unload request: %w", err)
//	}
type UnloadContainerCommand struct { //nolint:recvcheck //using for validation
	shipID       kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewUnloadContainerCommand creates a command to unload a container from a ship.
// Validates that both the ship ID and the serial number are properly constructed.
func NewUnloadContainerCommand(
	shipID kernel.UUID,
	serialNumber kernel.SerialNumber,
) (UnloadContainerCommand, error) {
	command := UnloadContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(shipID),
		command.setSerialNumber(serialNumber),
	); err != nil {
		return UnloadContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnloadContainerCommandIsNotConstructed if validation fails.
func (c UnloadContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnloadContainerCommandIsNotConstructed)
}

// ShipID returns the ship to unload from.
func (c UnloadContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// SerialNumber returns the serial number of the container to unload.
func (c UnloadContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

func (c *UnloadContainerCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *UnloadContainerCommand) setSerialNumber(serialNumber kernel.SerialNumber) error {
	if err := serialNumber.Validate(); err != nil {
		return err
	}

	c.serialNumber = serialNumber
	return nil
}
