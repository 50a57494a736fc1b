// Package guard provides ConstructorGuard, a marker that tells constructed values
// apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in aggregates, value objects, commands and queries.
// Only NewConstructorGuard produces a guard that validates, so a struct literal or a
// zero value of the owning type fails its Validate method.
//
// Example:
//
//	var ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
//
//	type Drone struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (d *Drone) Validate() error {
//	    return d.guard.Validate(ErrDroneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
