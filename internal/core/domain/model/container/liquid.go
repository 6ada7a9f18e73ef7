package container

import (
	"fmt"

	"freight/internal/pkg/errs"
)

const (
	// hazardousCapacityFactor caps hazardous liquid loads at half the max payload.
	hazardousCapacityFactor = 0.5
	// ordinaryCapacityFactor caps non-hazardous liquid loads at 90% of the tare weight.
	ordinaryCapacityFactor = 0.9
)

// LiquidContainer carries liquid cargo. The hazardous flag is fixed at
// construction and tightens the effective load capacity: hazardous liquids
// may fill only half the max payload, ordinary liquids up to 90% of the
// container's tare weight.
//
// LiquidContainer implements the hazard-notification capability: an overfill
// attempt emits a warning before the load is rejected.
type LiquidContainer struct {
	base
	hazardous bool
	notifier  Notifier
}

var (
	_ Container      = (*LiquidContainer)(nil)
	_ HazardNotifier = (*LiquidContainer)(nil)
)

// Hazardous reports whether the container carries hazardous liquid cargo.
func (c *LiquidContainer) Hazardous() bool {
	return c.hazardous
}

// EffectiveCapacity returns the kilogram limit actually enforced by Load,
// which is tighter than the nominal max payload.
func (c *LiquidContainer) EffectiveCapacity() float64 {
	if c.hazardous {
		return c.maxPayload * hazardousCapacityFactor
	}
	return c.tareWeight * ordinaryCapacityFactor
}

// Load replaces the current load mass with the given mass, enforcing the
// liquid capacity rule. An overfill triggers a hazard notification and fails
// with ErrOverfill, leaving the current load unchanged.
func (c *LiquidContainer) Load(mass float64) error {
	if mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"loadMass", fmt.Errorf("%.2f is negative", mass))
	}
	if mass > c.EffectiveCapacity() {
		c.NotifyHazard()
		return ErrOverfill
	}

	c.loadMass = mass
	return nil
}

// NotifyHazard emits a hazard warning identified by the container's serial number.
func (c *LiquidContainer) NotifyHazard() {
	c.notifier.NotifyHazard(Liquid, c.serial)
}

// Info returns the shared summary extended with the hazardous flag.
func (c *LiquidContainer) Info() string {
	return c.base.Info() + fmt.Sprintf(", hazardous=%t", c.hazardous)
}
