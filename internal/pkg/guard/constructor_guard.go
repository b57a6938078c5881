// Package guard implements a defensive construction check for domain objects.
// Value objects and commands embed a ConstructorGuard so that zero-value
// instances, which bypass constructor validation, can be detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value reports the object as not constructed, so any struct that
// embeds a guard and is created with a struct literal will fail validation.
//
// Example:
//
//	type SKU struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSKU(raw string) (SKU, error) {
//	    // validate raw ...
//	    return SKU{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s SKU) Validate() error {
//	    return s.guard.Validate(ErrSKUIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
// Call it only from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
