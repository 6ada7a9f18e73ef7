package container

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// gasResidualFraction is the share of the max payload left in a gas container
// after emptying; gases cannot be fully discharged.
const gasResidualFraction = 0.05

// GasContainer carries pressurized gaseous cargo. The pressure is fixed at
// construction and informational only. Emptying a gas container leaves a
// residual load of 5% of the max payload rather than zeroing it.
//
// GasContainer implements the hazard-notification capability: an overfill
// attempt emits a warning before the load is rejected.
type GasContainer struct {
	base
	pressure float64
	notifier Notifier
}

var (
	_ Container      = (*GasContainer)(nil)
	_ HazardNotifier = (*GasContainer)(nil)
)

// Pressure returns the container's operating pressure in atmospheres.
func (c *GasContainer) Pressure() float64 {
	return c.pressure
}

// Load replaces the current load mass with the given mass. Masses above the
// max payload trigger a hazard notification and fail with ErrOverfill.
func (c *GasContainer) Load(mass float64) error {
	if mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"loadMass", fmt.Errorf("%.2f is negative", mass))
	}
	if mass > c.maxPayload {
		c.NotifyHazard()
		return ErrOverfill
	}

	c.loadMass = mass
	return nil
}

// Empty discharges the container down to the residual fraction of the max
// payload, not to zero.
func (c *GasContainer) Empty() {
	c.loadMass = c.maxPayload * gasResidualFraction
}

// NotifyHazard emits a hazard warning identified by the container's serial number.
func (c *GasContainer) NotifyHazard() {
	c.notifier.NotifyHazard(Gas, c.serial)
}

// Info returns the shared summary extended with the operating pressure.
func (c *GasContainer) Info() string {
	return c.base.Info() + fmt.Sprintf(", pressure=%.2f atm", c.pressure)
}
