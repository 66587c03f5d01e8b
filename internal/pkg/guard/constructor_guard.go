// Package guard lets value objects, entities and commands detect whether they
// were built by their constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through a
// constructor. The zero value reports the type as not constructed.
//
// Example:
//
//	var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent")
//
//	type Event struct {
//	    kind  EventType
//	    guard guard.ConstructorGuard
//	}
//
//	func (e *Event) Validate() error {
//	    return e.guard.Validate(ErrEventIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
