package errs

import "errors"

// Class is a coarse classification of an error used by transport adapters.
type Class int

const (
	ClassInternal Class = iota
	ClassInvalid
	ClassForbidden
	ClassNotFound
	ClassConflict
)

func (c Class) String() string {
	switch c {
	case ClassInvalid:
		return "invalid"
	case ClassForbidden:
		return "forbidden"
	case ClassNotFound:
		return "not_found"
	case ClassConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Retryable reports whether the whole operation may succeed if repeated.
func (c Class) Retryable() bool {
	return c == ClassConflict
}

// ClassOf classifies err. Unknown errors are internal.
func ClassOf(err error) Class {
	switch {
	case err == nil, errors.Is(err, ErrIntegrityViolation):
		return ClassInternal
	case errors.Is(err, ErrValueIsInvalid), errors.Is(err, ErrValueIsRequired):
		return ClassInvalid
	case errors.Is(err, ErrTransitionNotPossible),
		errors.Is(err, ErrRoleNotAuthorized),
		errors.Is(err, ErrHistoryPreconditionFailed):
		return ClassForbidden
	case errors.Is(err, ErrObjectNotFound):
		return ClassNotFound
	case errors.Is(err, ErrConcurrentModification):
		return ClassConflict
	default:
		return ClassInternal
	}
}
