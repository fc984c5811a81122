package domain

import (
	"errors"
	"strings"
)

// The workflow surfaces a closed set of error kinds. Every catch site
// matches against these with errors.As; nothing else crosses the
// service boundary.

// ErrRegistrationClosed is returned for any submission after the
// configured registration end date.
var ErrRegistrationClosed = errors.New("Registration is currently closed")

// DuplicateField identifies which unique constraint a submission hit.
type DuplicateField string

const (
	FieldEmail DuplicateField = "email"
	FieldPRN   DuplicateField = "prn"
)

// ValidationError carries field-keyed human-readable messages. It is
// resolved locally and never reaches the network layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// DuplicateError reports an email or PRN conflict, surfaced verbatim
// to the caller so the message names the conflicting field.
type DuplicateError struct {
	Field DuplicateField
}

func (e *DuplicateError) Error() string {
	switch e.Field {
	case FieldEmail:
		return "Email is already registered"
	case FieldPRN:
		return "PRN is already registered"
	default:
		return "This record already exists"
	}
}

// DatabaseError wraps any other backend failure with a translated
// message when one is available.
type DatabaseError struct {
	Message string
}

func (e *DatabaseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Database operation failed"
}

// PaymentError covers gateway failures, signature mismatches and user
// cancellation. Cancellation is an error outcome, not a success-adjacent
// status.
type PaymentError struct {
	Reason    string
	Cancelled bool
}

func (e *PaymentError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "Payment processing failed"
}
