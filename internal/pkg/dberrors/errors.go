package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes used for classifying constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key
// violation, e.g. an insert referencing a missing student or course.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsConstraintViolation reports whether the error is either a unique or
// foreign key violation. Both surface to the API as a conflict.
func IsConstraintViolation(err error) bool {
	return IsUniqueViolation(err) || IsForeignKeyViolation(err)
}
