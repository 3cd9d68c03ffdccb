package service

import (
	"staff-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for the organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*CreateOrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, limit int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Deactivate(id uuid.UUID) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for the employee service
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetAll(page, limit int, status *models.EmployeeStatus) (*EmployeeListResponse, error)
	GetByOrganization(orgID uuid.UUID, page, limit int, status *models.EmployeeStatus) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Deactivate(id uuid.UUID) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}
