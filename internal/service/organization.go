package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staff-registry-backend/internal/database/models"
	apperrors "staff-registry-backend/internal/errors"
	"staff-registry-backend/internal/logger"
	"staff-registry-backend/internal/pagination"
	"staff-registry-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo         repository.OrganizationRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	hasher       PasswordHasher
	validator    *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, hasher PasswordHasher, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:         repo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		validator:    validator,
	}
}

// InitialEmployeeRequest is the employee payload accepted alongside a new
// organization in the composite creation mode
type InitialEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Position string `json:"position" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name     string                  `json:"name" validate:"required,min=1,max=100"`
	Sector   string                  `json:"sector" validate:"required,min=1,max=100"`
	TaxID    string                  `json:"tax_id" validate:"required"`
	City     string                  `json:"city" validate:"required,min=1,max=100"`
	Employee *InitialEmployeeRequest `json:"employee,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Sector *string `json:"sector" validate:"omitempty,min=1,max=100"`
	TaxID  *string `json:"tax_id"`
	City   *string `json:"city" validate:"omitempty,min=1,max=100"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Sector        string    `json:"sector"`
	TaxID         string    `json:"tax_id"`
	City          string    `json:"city"`
	IsActive      bool      `json:"is_active"`
	DeactivatedAt *string   `json:"deactivated_at,omitempty"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// CreateOrganizationResponse is returned by Create; Employee is set only
// when the composite creation mode was used
type CreateOrganizationResponse struct {
	OrganizationResponse
	Employee *EmployeeResponse `json:"employee,omitempty"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Items      []OrganizationResponse `json:"items"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}

// normalizeTaxID strips everything but digits so the stored value is
// uniform regardless of how the transport formatted it
func normalizeTaxID(taxID string) string {
	var b strings.Builder
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Create creates a new organization, optionally together with its initial
// employee. The composite path writes both records in one transaction.
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taxID := normalizeTaxID(req.TaxID)

	// Check if organization with same tax id exists
	if err := s.ensureTaxIDUnique(taxID, uuid.Nil); err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:     req.Name,
		Sector:   req.Sector,
		TaxID:    taxID,
		City:     req.City,
		IsActive: true,
	}

	if req.Employee == nil {
		if err := s.repo.Create(org); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil, apperrors.ErrOrganizationExists
			}
			return nil, fmt.Errorf("failed to create organization: %w", err)
		}
		return &CreateOrganizationResponse{OrganizationResponse: *s.toResponse(org)}, nil
	}

	// Composite mode: pre-check the employee email, hash the password, then
	// create both records atomically.
	if err := s.ensureEmployeeEmailUnique(req.Employee.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Employee.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		Name:         req.Employee.Name,
		Email:        req.Employee.Email,
		Position:     req.Employee.Position,
		PasswordHash: hash,
		Status:       models.EmployeeStatusActive,
	}

	if err := s.repo.CreateWithEmployee(org, employee); err != nil {
		if repository.IsUniqueViolation(err) {
			// The transaction rolled back, so a surviving holder of the tax
			// id tells the two conflicts apart.
			if _, lookupErr := s.repo.GetByTaxID(taxID); lookupErr == nil {
				return nil, apperrors.ErrOrganizationExists
			}
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create organization with employee: %w", err)
	}

	return &CreateOrganizationResponse{
		OrganizationResponse: *s.toResponse(org),
		Employee:             employeeToResponse(employee),
	}, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(page, limit int) (*OrganizationListResponse, error) {
	p := pagination.Params{Page: page, Limit: limit}.Normalize()

	orgs, total, err := s.repo.GetAll(p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	items := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		items[i] = *s.toResponse(&org)
	}

	return &OrganizationListResponse{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: pagination.TotalPages(total, p.Limit),
	}, nil
}

// Update merges the provided fields into an organization. The tax id is
// re-checked for uniqueness only when it changes.
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.TaxID != nil {
		taxID := normalizeTaxID(*req.TaxID)
		if taxID != org.TaxID {
			if err := s.ensureTaxIDUnique(taxID, id); err != nil {
				return nil, err
			}
		}
		org.TaxID = taxID
	}
	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Sector != nil {
		org.Sector = *req.Sector
	}
	if req.City != nil {
		org.City = *req.City
	}

	if err := s.repo.Update(org); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

// Deactivate marks an organization inactive. Blocked while the organization
// still owns an active employee.
func (s *OrganizationService) Deactivate(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.ensureNoActiveEmployees(id); err != nil {
		return nil, err
	}

	now := time.Now()
	org.IsActive = false
	org.DeactivatedAt = &now

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to deactivate organization: %w", err)
	}

	logger.New().WithField("organization_id", id).Info("organization deactivated")

	return s.toResponse(org), nil
}

// Delete removes an organization. Requires it to be deactivated already and
// to own no active employees.
func (s *OrganizationService) Delete(id uuid.UUID) error {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if org.IsActive {
		return apperrors.ErrOrganizationActive
	}

	// Employees can be hired into a deactivated organization, so the
	// active-employee guard applies here as well.
	if err := s.ensureNoActiveEmployees(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	logger.New().WithField("organization_id", id).Info("organization deleted")

	return nil
}

func (s *OrganizationService) ensureTaxIDUnique(taxID string, excludeID uuid.UUID) error {
	return ensureUnique(func() (uuid.UUID, error) {
		existing, err := s.repo.GetByTaxID(taxID)
		if err != nil {
			return uuid.Nil, err
		}
		return existing.ID, nil
	}, excludeID, apperrors.ErrOrganizationExists)
}

func (s *OrganizationService) ensureEmployeeEmailUnique(email string) error {
	return ensureUnique(func() (uuid.UUID, error) {
		existing, err := s.employeeRepo.GetByEmail(email)
		if err != nil {
			return uuid.Nil, err
		}
		return existing.ID, nil
	}, uuid.Nil, apperrors.ErrEmployeeExists)
}

func (s *OrganizationService) ensureNoActiveEmployees(id uuid.UUID) error {
	activeCount, err := s.employeeRepo.CountActiveByOrganization(id)
	if err != nil {
		return fmt.Errorf("failed to count active employees: %w", err)
	}
	if activeCount > 0 {
		return apperrors.ErrOrganizationHasActiveEmployees
	}
	return nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	resp := &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Sector:    org.Sector,
		TaxID:     org.TaxID,
		City:      org.City,
		IsActive:  org.IsActive,
		CreatedAt: org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if org.DeactivatedAt != nil {
		deactivatedAt := org.DeactivatedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.DeactivatedAt = &deactivatedAt
	}
	return resp
}
