package errs

import (
	"errors"
	"fmt"
)

var (
	ErrTransitionNotPossible     = errors.New("transition not possible")
	ErrRoleNotAuthorized         = errors.New("role not authorized for this transition")
	ErrHistoryPreconditionFailed = errors.New("history precondition failed")
	ErrConcurrentModification    = errors.New("concurrent modification")
	ErrIntegrityViolation        = errors.New("ledger integrity violation")
)

// TransitionNotPossibleError means the transition table has no entry for the
// pair of event types, whatever the role of the caller.
type TransitionNotPossibleError struct {
	From string
	To   string
}

func NewTransitionNotPossibleError(from, to string) *TransitionNotPossibleError {
	return &TransitionNotPossibleError{From: from, To: to}
}

func (e *TransitionNotPossibleError) Error() string {
	return fmt.Sprintf("%s: an order cannot be updated from '%s' to '%s'",
		ErrTransitionNotPossible, sanitize(e.From), sanitize(e.To))
}

func (e *TransitionNotPossibleError) Unwrap() error {
	return ErrTransitionNotPossible
}

// RoleNotAuthorizedError means the transition exists but the acting principal
// may not perform it.
type RoleNotAuthorizedError struct {
	Role   string
	Reason string
}

func NewRoleNotAuthorizedError(role, from, to string) *RoleNotAuthorizedError {
	return &RoleNotAuthorizedError{
		Role: role,
		Reason: fmt.Sprintf("a business of type '%s' is not authorized to update an order from '%s' to '%s'",
			sanitize(role), sanitize(from), sanitize(to)),
	}
}

// NewRoleNotAuthorizedErrorWithReason builds the error for authorization
// failures that are not about the transition table, such as a principal
// acting on an order it is not a party to.
func NewRoleNotAuthorizedErrorWithReason(role, reason string) *RoleNotAuthorizedError {
	return &RoleNotAuthorizedError{Role: role, Reason: reason}
}

func (e *RoleNotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRoleNotAuthorized, e.Reason)
}

func (e *RoleNotAuthorizedError) Unwrap() error {
	return ErrRoleNotAuthorized
}

// HistoryPreconditionFailedError means an event type that must (or must not)
// appear in the order history is missing (or present).
type HistoryPreconditionFailedError struct {
	EventType      string
	HistoricalType string
	Required       bool
}

func NewHistoryPreconditionFailedError(eventType, historicalType string, required bool) *HistoryPreconditionFailedError {
	return &HistoryPreconditionFailedError{
		EventType:      eventType,
		HistoricalType: historicalType,
		Required:       required,
	}
}

func (e *HistoryPreconditionFailedError) Error() string {
	happened := "has not happened"
	if !e.Required {
		happened = "has happened"
	}
	return fmt.Sprintf("%s: an order cannot be updated to '%s' if event type '%s' %s",
		ErrHistoryPreconditionFailed, sanitize(e.EventType), sanitize(e.HistoricalType), happened)
}

func (e *HistoryPreconditionFailedError) Unwrap() error {
	return ErrHistoryPreconditionFailed
}

// ConcurrentModificationError is returned by persistence adapters when a lock
// could not be taken or a concurrent writer won. Callers may retry the whole
// operation after re-reading state.
type ConcurrentModificationError struct {
	Entity string
	ID     any
	Cause  error
}

func NewConcurrentModificationError(entity string, id any, cause error) *ConcurrentModificationError {
	return &ConcurrentModificationError{
		Entity: entity,
		ID:     id,
		Cause:  cause,
	}
}

func (e *ConcurrentModificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrConcurrentModification, e.Entity, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrConcurrentModification, e.Entity, sanitize(e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// IntegrityViolationError means stored ledger data breaks an invariant the
// write path guarantees, such as an order without events. It is never the
// caller's fault.
type IntegrityViolationError struct {
	Entity string
	ID     any
	Cause  error
}

func NewIntegrityViolationError(entity string, id any, cause error) *IntegrityViolationError {
	return &IntegrityViolationError{
		Entity: entity,
		ID:     id,
		Cause:  cause,
	}
}

func (e *IntegrityViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrIntegrityViolation, e.Entity, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrIntegrityViolation, e.Entity, sanitize(e.ID))
}

func (e *IntegrityViolationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrIntegrityViolation, e.Cause}
	}
	return []error{ErrIntegrityViolation}
}
