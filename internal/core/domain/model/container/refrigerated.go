package container

import (
	"fmt"
)

// RefrigeratedContainer carries perishable cargo at a controlled temperature.
// Product and temperature are fixed at construction, which fails when the
// temperature is below the product's minimum storage temperature. Loading and
// emptying follow the default container policy, and the variant has no
// hazard-notification capability.
type RefrigeratedContainer struct {
	base
	product     Product
	temperature float64
}

var _ Container = (*RefrigeratedContainer)(nil)

// Product returns the perishable product the container is set up for.
func (c *RefrigeratedContainer) Product() Product {
	return c.product
}

// Temperature returns the container's storage temperature in °C.
func (c *RefrigeratedContainer) Temperature() float64 {
	return c.temperature
}

// Info returns the shared summary extended with product and temperature.
func (c *RefrigeratedContainer) Info() string {
	return c.base.Info() + fmt.Sprintf(", product=%s, temperature=%.1f°C", c.product, c.temperature)
}
