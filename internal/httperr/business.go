package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business error codes surfaced to callers.
const (
	CodeValidation         = "validation_error"
	CodePastTime           = "past_time"
	CodeClosedDay          = "closed_day"
	CodeOutsideHours       = "outside_hours"
	CodeUnknownBarber      = "unknown_barber"
	CodeUnknownType        = "unknown_type"
	CodeSchedulingConflict = "scheduling_conflict"
	CodeNotFound           = "not_found"
	CodeEmailTaken         = "email_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodePaymentUnavailable = "payment_unavailable"
	CodeStorageUnavailable = "storage_unavailable"
	CodeInvalidImage       = "invalid_image"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, format string, args ...any) error {
	return BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// --------------------------------------------------
// Postgres constraint violations
// --------------------------------------------------

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsExclusionConflict reports whether err comes from the turnos no-overlap
// exclusion constraint.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
