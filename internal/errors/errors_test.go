package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "organization"}
		assert.Equal(t, "organization not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "employee"}
		err2 := &NotFoundError{Entity: "employee"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "employee"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrOrganizationNotFound, ErrOrganizationNotFound))
		assert.False(t, errors.Is(ErrOrganizationNotFound, ErrEmployeeNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEmployeeNotFound))
		assert.False(t, IsNotFound(ErrEmployeeExists))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with rule", func(t *testing.T) {
		err := &ConflictError{Entity: "organization", Rule: "already exists with this tax id"}
		assert.Equal(t, "organization: already exists with this tax id", err.Error())
	})

	t.Run("Error message without rule", func(t *testing.T) {
		err := &ConflictError{Entity: "employee"}
		assert.Equal(t, "employee conflict", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &ConflictError{Entity: "employee", Rule: "already exists with this email"}
		assert.True(t, errors.Is(err1, ErrEmployeeExists))
		assert.False(t, errors.Is(err1, ErrEmployeeActive))
	})

	t.Run("distinct lifecycle rules stay distinct", func(t *testing.T) {
		assert.False(t, errors.Is(ErrOrganizationHasActiveEmployees, ErrOrganizationActive))
		assert.False(t, errors.Is(ErrOrganizationActive, ErrOrganizationExists))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrOrganizationExists))
		assert.True(t, IsConflict(ErrEmployeeActive))
		assert.False(t, IsConflict(ErrOrganizationNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrEmployeeNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewConflictError", func(t *testing.T) {
		err := NewConflictError("custom", "some rule")
		assert.Equal(t, "custom: some rule", err.Error())
		assert.True(t, IsConflict(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
