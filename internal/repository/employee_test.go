//go:build integration
// +build integration

package repository

import (
	"testing"

	"staff-registry-backend/internal/database/models"
	"staff-registry-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOrganization persists a parent organization for employee records
func (suite *EmployeeRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(org))
	return org
}

// TestCreate tests creating a new employee
func (suite *EmployeeRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	employee := suite.factories.Employee.WithOrganization(org.ID)

	err := suite.repo.Create(employee)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, employee.ID)
	suite.NotZero(employee.CreatedAt)
}

// TestCreateDuplicateEmail tests that the unique index on email holds
func (suite *EmployeeRepositoryTestSuite) TestCreateDuplicateEmail() {
	org := suite.createOrganization()

	employee1 := suite.factories.Employee.WithEmail("same@test.com")
	employee1.OrganizationID = org.ID
	suite.NoError(suite.repo.Create(employee1))

	employee2 := suite.factories.Employee.WithEmail("same@test.com")
	employee2.OrganizationID = org.ID

	err := suite.repo.Create(employee2)
	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByEmail tests retrieving an employee by email
func (suite *EmployeeRepositoryTestSuite) TestGetByEmail() {
	org := suite.createOrganization()
	employee := suite.factories.Employee.WithEmail("lookup@test.com")
	employee.OrganizationID = org.ID
	suite.NoError(suite.repo.Create(employee))

	retrieved, err := suite.repo.GetByEmail("lookup@test.com")

	suite.NoError(err)
	suite.Equal(employee.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests retrieving a non-existent email
func (suite *EmployeeRepositoryTestSuite) TestGetByEmailNotFound() {
	employee, err := suite.repo.GetByEmail("missing@test.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(employee)
}

// TestGetAllStatusFilter tests listing employees filtered by status
func (suite *EmployeeRepositoryTestSuite) TestGetAllStatusFilter() {
	org := suite.createOrganization()

	for i := 0; i < 3; i++ {
		employee := suite.factories.Employee.WithOrganization(org.ID)
		suite.NoError(suite.repo.Create(employee))
	}
	deactivated := suite.factories.Employee.WithStatus(models.EmployeeStatusDeactivated)
	deactivated.OrganizationID = org.ID
	suite.NoError(suite.repo.Create(deactivated))

	status := models.EmployeeStatusActive
	employees, total, err := suite.repo.GetAll(&status, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(employees, 3)

	employees, total, err = suite.repo.GetAll(nil, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(employees, 4)
}

// TestGetByOrganizationID tests listing employees scoped to one organization
func (suite *EmployeeRepositoryTestSuite) TestGetByOrganizationID() {
	org1 := suite.createOrganization()
	org2 := suite.createOrganization()

	for i := 0; i < 2; i++ {
		employee := suite.factories.Employee.WithOrganization(org1.ID)
		suite.NoError(suite.repo.Create(employee))
	}
	other := suite.factories.Employee.WithOrganization(org2.ID)
	suite.NoError(suite.repo.Create(other))

	employees, total, err := suite.repo.GetByOrganizationID(org1.ID, nil, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(employees, 2)
	for _, employee := range employees {
		suite.Equal(org1.ID, employee.OrganizationID)
	}
}

// TestCountActiveByOrganization tests the active-employee guard count
func (suite *EmployeeRepositoryTestSuite) TestCountActiveByOrganization() {
	org := suite.createOrganization()

	active := suite.factories.Employee.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(active))

	deactivated := suite.factories.Employee.WithStatus(models.EmployeeStatusDeactivated)
	deactivated.OrganizationID = org.ID
	suite.NoError(suite.repo.Create(deactivated))

	count, err := suite.repo.CountActiveByOrganization(org.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDeleteInactive tests the guarded delete
func (suite *EmployeeRepositoryTestSuite) TestDeleteInactive() {
	org := suite.createOrganization()

	deactivated := suite.factories.Employee.WithStatus(models.EmployeeStatusDeactivated)
	deactivated.OrganizationID = org.ID
	suite.NoError(suite.repo.Create(deactivated))

	rows, err := suite.repo.DeleteInactive(deactivated.ID)

	suite.NoError(err)
	suite.Equal(int64(1), rows)

	_, err = suite.repo.GetByID(deactivated.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteInactiveSkipsActive tests that the guarded delete leaves active
// employees untouched
func (suite *EmployeeRepositoryTestSuite) TestDeleteInactiveSkipsActive() {
	org := suite.createOrganization()
	active := suite.factories.Employee.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(active))

	rows, err := suite.repo.DeleteInactive(active.ID)

	suite.NoError(err)
	suite.Equal(int64(0), rows)

	retrieved, err := suite.repo.GetByID(active.ID)
	suite.NoError(err)
	suite.Equal(models.EmployeeStatusActive, retrieved.Status)
}

// TestUpdate tests updating an employee
func (suite *EmployeeRepositoryTestSuite) TestUpdate() {
	org := suite.createOrganization()
	employee := suite.factories.Employee.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(employee))

	employee.Position = "Principal Engineer"
	err := suite.repo.Update(employee)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal("Principal Engineer", retrieved.Position)
}

// TestGetWithOrganization tests preloading the parent organization
func (suite *EmployeeRepositoryTestSuite) TestGetWithOrganization() {
	org := suite.createOrganization()
	employee := suite.factories.Employee.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(employee))

	retrieved, err := suite.repo.GetWithOrganization(employee.ID)

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.Organization.ID)
	suite.Equal(org.TaxID, retrieved.Organization.TaxID)
}

func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
