package service

import (
	"errors"
	"fmt"
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

// EmployeeService handles business logic for employees. It holds the
// organization repository for the referential check on creation.
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	hasher    PasswordHasher
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, hasher PasswordHasher, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		orgRepo:   orgRepo,
		hasher:    hasher,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=200"`
	Email          string    `json:"email" validate:"required,email,max=255"`
	Position       string    `json:"position" validate:"required,min=1,max=100"`
	Password       string    `json:"password" validate:"required,min=8,max=128"`
}

// UpdateEmployeeRequest represents the request to update an employee.
// The organization reference is immutable and lifecycle status only changes
// through Deactivate, so neither is accepted here.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Position *string `json:"position" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=128"`
}

// EmployeeResponse represents the response for employee operations.
// It never carries the password hash.
type EmployeeResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Status         string    `json:"status"`
	TerminatedAt   *string   `json:"terminated_at,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Items      []EmployeeResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// Create creates a new employee referencing an existing organization
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Referential check: the organization must exist
	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.ensureEmailUnique(req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Position:       req.Position,
		PasswordHash:   hash,
		Status:         models.EmployeeStatusActive,
	}

	if err := s.repo.Create(employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employeeToResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employeeToResponse(employee), nil
}

// GetAll retrieves all employees with pagination, optionally filtered by status
func (s *EmployeeService) GetAll(page, limit int, status *models.EmployeeStatus) (*EmployeeListResponse, error) {
	p := pagination.Params{Page: page, Limit: limit}.Normalize()

	employees, total, err := s.repo.GetAll(status, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return s.toListResponse(employees, total, p), nil
}

// GetByOrganization retrieves the employees of one organization with
// pagination, optionally filtered by status
func (s *EmployeeService) GetByOrganization(orgID uuid.UUID, page, limit int, status *models.EmployeeStatus) (*EmployeeListResponse, error) {
	p := pagination.Params{Page: page, Limit: limit}.Normalize()

	employees, total, err := s.repo.GetByOrganizationID(orgID, status, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return s.toListResponse(employees, total, p), nil
}

// Update merges the provided fields into an employee. A changed email is
// re-checked for uniqueness excluding the employee itself; a new password is
// re-hashed before persisting.
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Email != nil && *req.Email != employee.Email {
		if err := s.ensureEmailUnique(*req.Email, id); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		employee.PasswordHash = hash
	}

	if err := s.repo.Update(employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employeeToResponse(employee), nil
}

// Deactivate marks an employee as deactivated and records the termination time
func (s *EmployeeService) Deactivate(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	now := time.Now()
	employee.Status = models.EmployeeStatusDeactivated
	employee.TerminatedAt = &now

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to deactivate employee: %w", err)
	}

	logger.New().WithField("employee_id", id).Info("employee deactivated")

	return employeeToResponse(employee), nil
}

// Delete removes an employee, permitted only while deactivated. A guarded
// delete that matched nothing is disambiguated with a secondary lookup.
func (s *EmployeeService) Delete(id uuid.UUID) error {
	rows, err := s.repo.DeleteInactive(id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if rows > 0 {
		logger.New().WithField("employee_id", id).Info("employee deleted")
		return nil
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return apperrors.ErrEmployeeActive
}

func (s *EmployeeService) ensureEmailUnique(email string, excludeID uuid.UUID) error {
	return ensureUnique(func() (uuid.UUID, error) {
		existing, err := s.repo.GetByEmail(email)
		if err != nil {
			return uuid.Nil, err
		}
		return existing.ID, nil
	}, excludeID, apperrors.ErrEmployeeExists)
}

func (s *EmployeeService) toListResponse(employees []models.Employee, total int64, p pagination.Params) *EmployeeListResponse {
	items := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		items[i] = *employeeToResponse(&employee)
	}

	return &EmployeeListResponse{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: pagination.TotalPages(total, p.Limit),
	}
}

// employeeToResponse converts an employee model to a response without the
// password hash
func employeeToResponse(employee *models.Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:             employee.ID,
		OrganizationID: employee.OrganizationID,
		Name:           employee.Name,
		Email:          employee.Email,
		Position:       employee.Position,
		Status:         string(employee.Status),
		CreatedAt:      employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if employee.TerminatedAt != nil {
		terminatedAt := employee.TerminatedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.TerminatedAt = &terminatedAt
	}
	return resp
}
