package repository

import (
	"errors"
	"strings"

	domain "technopedia-registration/internal/domain/registration"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes worth translating into domain messages.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps backend failures onto the closed domain error
// set. Unique violations name the conflicting field; anything else
// passes its message through.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "email") {
				return &domain.DuplicateError{Field: domain.FieldEmail}
			}
			if strings.Contains(pgErr.ConstraintName, "prn") {
				return &domain.DuplicateError{Field: domain.FieldPRN}
			}
			return &domain.DatabaseError{Message: "This record already exists"}
		case pgForeignKeyViolation:
			return &domain.DatabaseError{Message: "Invalid reference data"}
		}
	}

	return &domain.DatabaseError{Message: err.Error()}
}
