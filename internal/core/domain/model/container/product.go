package container

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Product identifies the perishable cargo carried by refrigerated containers.
// Each product has a fixed minimum storage temperature; a refrigerated
// container must be at or above that minimum for the product it carries.
type Product int

const (
	// UnknownProduct represents an invalid or undefined product.
	// This value (0) helps catch uninitialized Product values.
	UnknownProduct Product = iota

	// Fruit requires storage at 13.3 °C or warmer.
	Fruit

	// Meat requires storage at −15 °C or warmer.
	Meat

	// Dairy requires storage at 7.2 °C or warmer.
	Dairy
)

// getProductStrings returns a map of Product values to their string representations.
func getProductStrings() map[Product]string {
	return map[Product]string{
		UnknownProduct: "Unknown",
		Fruit:          "Fruit",
		Meat:           "Meat",
		Dairy:          "Dairy",
	}
}

// getMinimumStorageTemperatures returns the minimum storage temperature in °C
// per valid product. UnknownProduct is intentionally excluded.
func getMinimumStorageTemperatures() map[Product]float64 {
	return map[Product]float64{
		Fruit: 13.3,
		Meat:  -15,
		Dairy: 7.2,
	}
}

// Validate checks if the Product value is one of the known products.
func (p Product) Validate() error {
	if _, ok := getMinimumStorageTemperatures()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("%d is not a valid product", p))
	}
	return nil
}

// String returns the human-readable name of the product.
func (p Product) String() string {
	if str, ok := getProductStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// MinimumStorageTemperature returns the lowest temperature in °C at which the
// product may be stored. Returns an error for products outside the valid set.
func (p Product) MinimumStorageTemperature() (float64, error) {
	minimum, ok := getMinimumStorageTemperatures()[p]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("%d has no storage temperature", p))
	}
	return minimum, nil
}
