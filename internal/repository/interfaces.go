package repository

import (
	"staff-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithEmployee(org *models.Organization, employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByTaxID(taxID string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	GetWithEmployees(id uuid.UUID) (*models.Organization, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetAll(status *models.EmployeeStatus, limit, offset int) ([]models.Employee, int64, error)
	GetByOrganizationID(orgID uuid.UUID, status *models.EmployeeStatus, limit, offset int) ([]models.Employee, int64, error)
	CountActiveByOrganization(orgID uuid.UUID) (int64, error)
	Update(employee *models.Employee) error
	DeleteInactive(id uuid.UUID) (int64, error)
	GetWithOrganization(id uuid.UUID) (*models.Employee, error)
}
