// Package guard provides a defensive-construction primitive shared by domain
// entities and value objects. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a zero
// value, keeping invariants enforced from the moment of construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// unconstructed and fails validation, so structs created by direct literal
// initialization are distinguishable from ones built by their constructor.
//
// Example usage:
//
//	type Ship struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShip(name string) (*Ship, error) {
//	    if name == "" {
//	        return nil, errors.New("name is required")
//	    }
//	    return &Ship{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s *Ship) Validate() error {
//	    return s.guard.Validate(ErrShipIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it inside the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
