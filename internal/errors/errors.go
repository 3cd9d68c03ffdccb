package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a violated business invariant: a duplicate
// identifying field or a lifecycle transition blocked by related state.
// The message names the specific rule that was violated.
type ConflictError struct {
	Entity string
	Rule   string
}

func (e *ConflictError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Rule)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Rule == t.Rule
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
)

// Conflict Errors
var (
	ErrOrganizationExists = &ConflictError{Entity: "organization", Rule: "already exists with this tax id"}
	ErrEmployeeExists     = &ConflictError{Entity: "employee", Rule: "already exists with this email"}

	ErrOrganizationHasActiveEmployees = &ConflictError{Entity: "organization", Rule: "has active employees"}
	ErrOrganizationActive             = &ConflictError{Entity: "organization", Rule: "active organization cannot be deleted"}
	ErrEmployeeActive                 = &ConflictError{Entity: "employee", Rule: "active employee cannot be deleted"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity and rule
func NewConflictError(entity, rule string) error {
	return &ConflictError{Entity: entity, Rule: rule}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
