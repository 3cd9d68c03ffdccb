package testutils

import (
	"fmt"
	"time"

	"staff-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values. The tax id is
// derived from the record's UUID so concurrent factories don't collide.
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Organization",
		Sector:   "Technology",
		TaxID:    fmt.Sprintf("%014d", id.ID())[:14],
		City:     "Test City",
		IsActive: true,
	}
}

// WithTaxID sets a custom tax id for the organization
func (f *OrganizationFactory) WithTaxID(taxID string) *models.Organization {
	org := f.Create()
	org.TaxID = taxID
	return org
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// Deactivated returns an organization already marked inactive
func (f *OrganizationFactory) Deactivated() *models.Organization {
	org := f.Create()
	now := time.Now()
	org.IsActive = false
	org.DeactivatedAt = &now
	return org
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values. The email embeds part
// of the UUID to keep it unique across factory calls.
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Jane Doe",
		Email:          fmt.Sprintf("jane.%s@test.com", id.String()[:8]),
		Position:       "Engineer",
		PasswordHash:   "$2a$04$testhashtesthashtesthash",
		Status:         models.EmployeeStatusActive,
	}
}

// WithOrganization sets the organization ID for the employee
func (f *EmployeeFactory) WithOrganization(orgID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.OrganizationID = orgID
	return employee
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	employee := f.Create()
	employee.Email = email
	return employee
}

// WithStatus sets a custom status for the employee
func (f *EmployeeFactory) WithStatus(status models.EmployeeStatus) *models.Employee {
	employee := f.Create()
	employee.Status = status
	if status == models.EmployeeStatusDeactivated {
		now := time.Now()
		employee.TerminatedAt = &now
	}
	return employee
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Employee     *EmployeeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Employee:     NewEmployeeFactory(),
	}
}
