package container

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Kind identifies the container variant. The set is closed: every container
// in the system is exactly one of Liquid, Gas, or Refrigerated.
//
// Kind is a value object that validates itself and provides the type code
// embedded in container serial numbers.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Liquid marks containers for liquid cargo, optionally hazardous.
	Liquid

	// Gas marks pressurized containers for gaseous cargo.
	Gas

	// Refrigerated marks temperature-controlled containers for perishables.
	Refrigerated
)

// getKindStrings returns a map of Kind values to their string representations.
// All kinds are included for string conversion.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:  "Unknown",
		Liquid:       "Liquid",
		Gas:          "Gas",
		Refrigerated: "Refrigerated",
	}
}

// getValidKindTypeCodes returns a map of only valid Kind values to the type
// codes used in serial numbers. UnknownKind is intentionally excluded.
func getValidKindTypeCodes() map[Kind]string {
	return map[Kind]string{
		Liquid:       "L",
		Gas:          "G",
		Refrigerated: "R",
	}
}

// Validate checks if the Kind value is one of the closed variant set.
// UnknownKind (0) and any other values are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindTypeCodes()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid container kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// It implements fmt.Stringer and is safe on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// TypeCode returns the serial-number code for the kind ("L", "G", or "R").
// Returns an error for kinds outside the valid set.
func (k Kind) TypeCode() (string, error) {
	code, ok := getValidKindTypeCodes()[k]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d has no type code", k))
	}
	return code, nil
}
