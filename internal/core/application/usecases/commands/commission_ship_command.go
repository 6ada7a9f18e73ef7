package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCommissionShipCommandIsNotConstructed = errors.New(
		"CommissionShipCommand must be created via NewCommissionShipCommand constructor",
	)
	ErrNameIsRequired             = errors.New("name is required")
	ErrMaxSpeedIsInvalid          = errors.New("maxSpeed must be greater than 0")
	ErrMaxContainerCountIsInvalid = errors.New("maxContainerCount must be greater than 0")
	ErrMaxTotalWeightIsInvalid    = errors.New("maxTotalWeight must be greater than 0")
)

// CommissionShipCommand represents a request to commission a new ship into the fleet.
// Encapsulates all data needed to create a ship entity with its cargo limits.
//
// Example:
//
//	cmd, err := NewCommissionShipCommand("Evergreen", 18, 24, 300)
//	if err != nil {
//	    return fmt.Errorf("invalid ship data: %w", err)
//	}
//
//	handler := NewCommissionShipCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to commission ship: %w", err)
//	}
//	fmt.Printf("Commissioned ship with ID: %s", cmd.ShipID())
type CommissionShipCommand struct { //nolint:recvcheck //using for validation
	shipID            kernel.UUID
	name              string
	maxSpeed          int
	maxContainerCount int
	maxTotalWeight    float64

	guard guard.ConstructorGuard
}

// NewCommissionShipCommand creates a command to commission a new ship.
// Automatically generates a unique ID for the ship.
// Validates that the name is not empty and all limits are positive.
func NewCommissionShipCommand(
	name string,
	maxSpeed int,
	maxContainerCount int,
	maxTotalWeight float64,
) (CommissionShipCommand, error) {
	command := CommissionShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(kernel.NewUUID()),
		command.setName(name),
		command.setMaxSpeed(maxSpeed),
		command.setMaxContainerCount(maxContainerCount),
		command.setMaxTotalWeight(maxTotalWeight),
	); err != nil {
		return CommissionShipCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCommissionShipCommandIsNotConstructed if validation fails.
func (c CommissionShipCommand) Validate() error {
	return c.guard.Validate(ErrCommissionShipCommandIsNotConstructed)
}

// ShipID returns the generated ship ID from the command.
func (c CommissionShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Name returns the ship name from the command.
func (c CommissionShipCommand) Name() string {
	return c.name
}

// MaxSpeed returns the ship's maximum speed from the command.
func (c CommissionShipCommand) MaxSpeed() int {
	return c.maxSpeed
}

// MaxContainerCount returns the ship's container capacity from the command.
func (c CommissionShipCommand) MaxContainerCount() int {
	return c.maxContainerCount
}

// MaxTotalWeight returns the ship's cargo weight limit in tonnes from the command.
func (c CommissionShipCommand) MaxTotalWeight() float64 {
	return c.maxTotalWeight
}

func (c *CommissionShipCommand) setShipID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipID = id
	return nil
}

func (c *CommissionShipCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CommissionShipCommand) setMaxSpeed(maxSpeed int) error {
	if maxSpeed <= 0 {
		return ErrMaxSpeedIsInvalid
	}

	c.maxSpeed = maxSpeed
	return nil
}

func (c *CommissionShipCommand) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount <= 0 {
		return ErrMaxContainerCountIsInvalid
	}

	c.maxContainerCount = maxContainerCount
	return nil
}

func (c *CommissionShipCommand) setMaxTotalWeight(maxTotalWeight float64) error {
	if maxTotalWeight <= 0 {
		return ErrMaxTotalWeightIsInvalid
	}

	c.maxTotalWeight = maxTotalWeight
	return nil
}
