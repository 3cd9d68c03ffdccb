package repository

import (
	"staff-registry-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees with pagination, optionally filtered by
// status. The count runs against the same filtered query as the page.
func (r *EmployeeRepository) GetAll(status *models.EmployeeStatus, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetByOrganizationID retrieves all employees for an organization with
// pagination, optionally filtered by status
func (r *EmployeeRepository) GetByOrganizationID(orgID uuid.UUID, status *models.EmployeeStatus, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{}).Where("organization_id = ?", orgID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// CountActiveByOrganization counts employees of an organization whose
// status is active. Guards organization deactivation and deletion.
func (r *EmployeeRepository) CountActiveByOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Employee{}).
		Where("organization_id = ? AND status = ?", orgID, models.EmployeeStatusActive).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// DeleteInactive removes the employee only when its status is not active,
// and reports how many rows matched. Zero rows means the caller must
// distinguish "missing" from "still active" with a secondary lookup.
func (r *EmployeeRepository) DeleteInactive(id uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND status <> ?", id, models.EmployeeStatusActive).
		Delete(&models.Employee{})
	return result.RowsAffected, result.Error
}

// GetWithOrganization retrieves an employee with organization details
func (r *EmployeeRepository) GetWithOrganization(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("Organization").First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
