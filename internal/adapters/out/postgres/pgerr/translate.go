// Package pgerr maps Postgres and GORM failures onto the errors of
// marketplace/internal/pkg/errs.
package pgerr

import (
	"errors"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes reported when a concurrent writer got in the way.
const (
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	LockNotAvailable     = "55P03"
	UniqueViolation      = "23505"
)

// IsConflict reports whether err is a Postgres error that the caller can
// resolve by retrying the whole transaction.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case SerializationFailure, DeadlockDetected, LockNotAvailable, UniqueViolation:
		return true
	default:
		return false
	}
}

// Translate turns err into a typed error for entity with the given id.
// Missing rows become not found, conflicts become concurrent modification,
// anything else is returned unchanged.
func Translate(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(entity, id)
	case IsConflict(err):
		return errs.NewConcurrentModificationError(entity, id, err)
	default:
		return err
	}
}
