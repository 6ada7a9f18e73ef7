package commands

import (
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/pkg/guard"
)

var (
	ErrCommissionContainerCommandIsNotConstructed = errors.New(
		"CommissionContainerCommand must be created via NewCommissionContainerCommand constructor",
	)
	ErrHeightIsInvalid     = errors.New("height must be greater than 0")
	ErrDepthIsInvalid      = errors.New("depth must be greater than 0")
	ErrMaxPayloadIsInvalid = errors.New("maxPayload must be greater than 0")
	ErrTareWeightIsInvalid = errors.New("tareWeight must be greater than 0")
	ErrPressureIsInvalid   = errors.New("pressure must be greater than 0")
)

// CommissionContainerCommand represents a request to commission a new cargo
// container. The container is created through the container factory, receives
// the next serial number, and starts in the yard awaiting ship assignment.
//
// The kind decides which of the variant parameters are used: hazardous for
// liquid containers, pressure for gas containers, product and temperature for
// refrigerated containers. Unused variant parameters are ignored.
//
// Example:
//
//	cmd, err := NewCommissionContainerCommand(
//	    container.Gas, 2.6, 6.0, 25_000, 3_500,
//	    false, 15, container.UnknownProduct, 0,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid container data: %w", err)
//	}
type CommissionContainerCommand struct { //nolint:recvcheck //using for validation
	kind       container.Kind
	height     float64
	depth      float64
	maxPayload float64
	tareWeight float64

	hazardous   bool
	pressure    float64
	product     container.Product
	temperature float64

	guard guard.ConstructorGuard
}

// NewCommissionContainerCommand creates a command to commission a new container.
// Validates the kind, the dimensions, and the variant parameters relevant to
// the kind. Temperature suitability for the product is a domain rule and is
// checked by the container factory when the command is handled.
func NewCommissionContainerCommand(
	kind container.Kind,
	height, depth, maxPayload, tareWeight float64,
	hazardous bool,
	pressure float64,
	product container.Product,
	temperature float64,
) (CommissionContainerCommand, error) {
	command := CommissionContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setDimensions(height, depth, maxPayload, tareWeight),
		command.setVariantParams(kind, hazardous, pressure, product, temperature),
	); err != nil {
		return CommissionContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCommissionContainerCommandIsNotConstructed if validation fails.
func (c CommissionContainerCommand) Validate() error {
	return c.guard.Validate(ErrCommissionContainerCommandIsNotConstructed)
}

// Kind returns the container kind from the command.
func (c CommissionContainerCommand) Kind() container.Kind {
	return c.kind
}

// Height returns the container height in metres from the command.
func (c CommissionContainerCommand) Height() float64 {
	return c.height
}

// Depth returns the container depth in metres from the command.
func (c CommissionContainerCommand) Depth() float64 {
	return c.depth
}

// MaxPayload returns the payload limit in kilograms from the command.
func (c CommissionContainerCommand) MaxPayload() float64 {
	return c.maxPayload
}

// TareWeight returns the empty weight in kilograms from the command.
func (c CommissionContainerCommand) TareWeight() float64 {
	return c.tareWeight
}

// Hazardous reports whether a liquid container carries hazardous cargo.
func (c CommissionContainerCommand) Hazardous() bool {
	return c.hazardous
}

// Pressure returns the working pressure of a gas container in atmospheres.
func (c CommissionContainerCommand) Pressure() float64 {
	return c.pressure
}

// Product returns the stored product of a refrigerated container.
func (c CommissionContainerCommand) Product() container.Product {
	return c.product
}

// Temperature returns the storage temperature of a refrigerated container in °C.
func (c CommissionContainerCommand) Temperature() float64 {
	return c.temperature
}

func (c *CommissionContainerCommand) setKind(kind container.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CommissionContainerCommand) setDimensions(height, depth, maxPayload, tareWeight float64) error {
	var errList []error
	if height <= 0 {
		errList = append(errList, ErrHeightIsInvalid)
	}
	if depth <= 0 {
		errList = append(errList, ErrDepthIsInvalid)
	}
	if maxPayload <= 0 {
		errList = append(errList, ErrMaxPayloadIsInvalid)
	}
	if tareWeight <= 0 {
		errList = append(errList, ErrTareWeightIsInvalid)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.height = height
	c.depth = depth
	c.maxPayload = maxPayload
	c.tareWeight = tareWeight
	return nil
}

func (c *CommissionContainerCommand) setVariantParams(
	kind container.Kind,
	hazardous bool,
	pressure float64,
	product container.Product,
	temperature float64,
) error {
	switch kind {
	case container.Liquid:
		c.hazardous = hazardous
	case container.Gas:
		if pressure <= 0 {
			return ErrPressureIsInvalid
		}
		c.pressure = pressure
	case container.Refrigerated:
		if err := product.Validate(); err != nil {
			return err
		}
		c.product = product
		c.temperature = temperature
	case container.UnknownKind:
		// kind validation already reported the error
	}

	return nil
}
