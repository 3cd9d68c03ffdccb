package models

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeStatus represents the lifecycle status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive      EmployeeStatus = "active"
	EmployeeStatusDeactivated EmployeeStatus = "deactivated"
)

// Valid reports whether the status is one of the known values
func (s EmployeeStatus) Valid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusDeactivated
}

// Employee represents a staff member employed by an organization.
// PasswordHash is write-only: it is never serialized in API responses.
type Employee struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string         `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Email          string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Position       string         `json:"position" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	PasswordHash   string         `json:"-" gorm:"column:password_hash;not null;size:100"`
	Status         EmployeeStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	TerminatedAt   *time.Time     `json:"terminated_at,omitempty"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
