package container

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrFactoryIsNotConstructed is returned when using an improperly initialized Factory.
	ErrFactoryIsNotConstructed = errors.New("Factory must be created via NewFactory constructor")
	// ErrSequenceIsRequired is returned when creating a factory without a serial sequence.
	ErrSequenceIsRequired = errs.NewValueIsRequiredError("sequence")
	// ErrNotifierIsRequired is returned when creating a factory without a hazard notifier.
	ErrNotifierIsRequired = errs.NewValueIsRequiredError("notifier")
)

// Factory constructs cargo containers. It owns the serial number sequence and
// the hazard notifier, so serial assignment is an explicit dependency instead
// of hidden process-wide state, and every hazard-capable container emits
// warnings to the same place.
//
// New* constructors assign a fresh serial number and an empty load. Restore*
// constructors rebuild previously persisted containers from their stored
// serial number and load mass without consuming sequence values.
//
// Example:
//
//	factory, err := container.NewFactory(
//	    kernel.NewSerialSequence(),
//	    container.NewLogNotifier(logger),
//	)
//	if err != nil {
//	    return err
//	}
//
//	tank, err := factory.NewLiquidContainer(259, 606, 26_000, 3_800, true)
type Factory struct {
	sequence *kernel.SerialSequence
	notifier Notifier
	guard    guard.ConstructorGuard
}

// NewFactory creates a container factory bound to a serial sequence and a
// hazard notifier. Both dependencies are required.
func NewFactory(sequence *kernel.SerialSequence, notifier Notifier) (*Factory, error) {
	if sequence == nil {
		return nil, ErrSequenceIsRequired
	}
	if notifier == nil {
		return nil, ErrNotifierIsRequired
	}

	return &Factory{
		sequence: sequence,
		notifier: notifier,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the factory was properly constructed.
func (f *Factory) Validate() error {
	if f == nil {
		return ErrFactoryIsNotConstructed
	}
	return f.guard.Validate(ErrFactoryIsNotConstructed)
}

// NewLiquidContainer constructs an empty liquid container with a fresh serial
// number. Dimensions and weights are in centimeters and kilograms; the
// hazardous flag is fixed for the container's lifetime.
func (f *Factory) NewLiquidContainer(
	height, depth, maxPayload, tareWeight float64,
	hazardous bool,
) (*LiquidContainer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	serial, err := f.nextSerial(Liquid)
	if err != nil {
		return nil, err
	}

	return f.RestoreLiquidContainer(serial, height, depth, maxPayload, tareWeight, 0, hazardous)
}

// RestoreLiquidContainer rebuilds a persisted liquid container.
func (f *Factory) RestoreLiquidContainer(
	serial kernel.SerialNumber,
	height, depth, maxPayload, tareWeight, loadMass float64,
	hazardous bool,
) (*LiquidContainer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	b, err := newBase(serial, Liquid, height, depth, maxPayload, tareWeight, loadMass)
	if err != nil {
		return nil, err
	}

	return &LiquidContainer{
		base:      b,
		hazardous: hazardous,
		notifier:  f.notifier,
	}, nil
}

// NewGasContainer constructs an empty gas container with a fresh serial
// number. The pressure is informational and not validated against a range.
func (f *Factory) NewGasContainer(
	height, depth, maxPayload, tareWeight, pressure float64,
) (*GasContainer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	serial, err := f.nextSerial(Gas)
	if err != nil {
		return nil, err
	}

	return f.RestoreGasContainer(serial, height, depth, maxPayload, tareWeight, 0, pressure)
}

// RestoreGasContainer rebuilds a persisted gas container.
func (f *Factory) RestoreGasContainer(
	serial kernel.SerialNumber,
	height, depth, maxPayload, tareWeight, loadMass, pressure float64,
) (*GasContainer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	b, err := newBase(serial, Gas, height, depth, maxPayload, tareWeight, loadMass)
	if err != nil {
		return nil, err
	}

	return &GasContainer{
		base:     b,
		pressure: pressure,
		notifier: f.notifier,
	}, nil
}

// NewRefrigeratedContainer constructs an empty refrigerated container with a
// fresh serial number. Construction fails when the temperature is below the
// product's minimum storage temperature; no partially constructed container
// is observable.
func (f *Factory) NewRefrigeratedContainer(
	height, depth, maxPayload, tareWeight float64,
	product Product, temperature float64,
) (*RefrigeratedContainer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if err := validateStorageTemperature(product, temperature); err != nil {
		return nil, err
	}

	serial, err := f.nextSerial(Refrigerated)
	if err != nil {
		return nil, err
	}

	return f.RestoreRefrigeratedContainer(serial, height, depth, maxPayload, tareWeight, 0, product, temperature)
}

// RestoreRefrigeratedContainer rebuilds a persisted refrigerated container.
func (f *Factory) RestoreRefrigeratedContainer(
	serial kernel.SerialNumber,
	height, depth, maxPayload, tareWeight, loadMass float64,
	product Product, temperature float64,
) (*RefrigeratedContainer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if err := validateStorageTemperature(product, temperature); err != nil {
		return nil, err
	}

	b, err := newBase(serial, Refrigerated, height, depth, maxPayload, tareWeight, loadMass)
	if err != nil {
		return nil, err
	}

	return &RefrigeratedContainer{
		base:        b,
		product:     product,
		temperature: temperature,
	}, nil
}

func (f *Factory) nextSerial(kind Kind) (kernel.SerialNumber, error) {
	typeCode, err := kind.TypeCode()
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	return kernel.NewSerialNumber(typeCode, f.sequence.Next())
}

func validateStorageTemperature(product Product, temperature float64) error {
	if err := product.Validate(); err != nil {
		return err
	}

	minimum, err := product.MinimumStorageTemperature()
	if err != nil {
		return err
	}

	if temperature < minimum {
		return errs.NewValueIsInvalidErrorWithCause(
			"temperature",
			fmt.Errorf("%.1f°C is below the minimum storage temperature %.1f°C for %s",
				temperature, minimum, product),
		)
	}

	return nil
}
