// Package pgerrs translates PostgreSQL driver errors into domain errors.
package pgerrs

import (
	"errors"

	"dinner/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the SQLSTATE of a unique constraint violation.
const uniqueViolation = "23505"

// Translate maps a unique violation to errs.ObjectAlreadyExistsError and a missing row to
// errs.ObjectNotFoundError. Other errors are returned unchanged.
func Translate(err error, paramName string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewObjectAlreadyExistsErrorWithCause(paramName, id, errors.New(pgErr.ConstraintName))
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}

	return err
}
