// Package guard implements a defensive construction pattern for value objects
// and entities. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypassed their constructor fail
// validation instead of carrying unchecked state through the domain.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value reports the object as not constructed.
//
// Example:
//
//	type TrackingCode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackingCode(value string) (TrackingCode, error) {
//	    // ... validate value ...
//	    return TrackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c TrackingCode) Validate() error {
//	    return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was created through its
// constructor. Otherwise it returns validationError, or
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
