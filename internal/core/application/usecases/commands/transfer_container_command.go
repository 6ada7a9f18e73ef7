package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrTransferContainerCommandIsNotConstructed = errors.New(
		"TransferContainerCommand must be created via NewTransferContainerCommand constructor",
	)
	ErrSameShipTransfer = errors.New("source and target ships must differ")
)

// TransferContainerCommand represents a request to move a container from one
// ship directly onto another, without passing through the yard.
//
// Example:
//
//	cmd, err := NewTransferContainerCommand(sourceID, targetID, serial)
//	if err != nil {
//	    return fmt.Errorf("invalid transfer request: %w", err)
//	}
type TransferContainerCommand struct { //nolint:recvcheck //using for validation
	sourceShipID kernel.UUID
	targetShipID kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewTransferContainerCommand creates a command to transfer a container
// between two ships. Validates both ship IDs and the serial number, and
// rejects transfers where source and target are the same ship.
func NewTransferContainerCommand(
	sourceShipID kernel.UUID,
	targetShipID kernel.UUID,
	serialNumber kernel.SerialNumber,
) (TransferContainerCommand, error) {
	command := TransferContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShips(sourceShipID, targetShipID),
		command.setSerialNumber(serialNumber),
	); err != nil {
		return TransferContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransferContainerCommandIsNotConstructed if validation fails.
func (c TransferContainerCommand) Validate() error {
	return c.guard.Validate(ErrTransferContainerCommandIsNotConstructed)
}

// SourceShipID returns the ship the container is leaving.
func (c TransferContainerCommand) SourceShipID() kernel.UUID {
	return c.sourceShipID
}

// TargetShipID returns the ship the container is moving onto.
func (c TransferContainerCommand) TargetShipID() kernel.UUID {
	return c.targetShipID
}

// SerialNumber returns the serial number of the container to transfer.
func (c TransferContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

func (c *TransferContainerCommand) setShips(sourceShipID, targetShipID kernel.UUID) error {
	if err := errors.Join(sourceShipID.Validate(), targetShipID.Validate()); err != nil {
		return err
	}
	if sourceShipID.IsEqual(targetShipID) {
		return ErrSameShipTransfer
	}

	c.sourceShipID = sourceShipID
	c.targetShipID = targetShipID
	return nil
}

func (c *TransferContainerCommand) setSerialNumber(serialNumber kernel.SerialNumber) error {
	if err := serialNumber.Validate(); err != nil {
		return err
	}

	c.serialNumber = serialNumber
	return nil
}
