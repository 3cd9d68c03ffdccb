package service_test

import (
	"testing"
	"time"

	"staff-registry-backend/internal/database/models"
	apperrors "staff-registry-backend/internal/errors"
	"staff-registry-backend/internal/mocks"
	"staff-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// stubHasher avoids pulling real bcrypt into unit tests
type stubHasher struct {
	hash string
	err  error
}

func (s *stubHasher) Hash(string) (string, error) {
	return s.hash, s.err
}

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	hasher           *stubHasher
	orgService       *service.OrganizationService
	validator        *validator.Validate
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.hasher = &stubHasher{hash: "$2a$10$stubbedhash"}
	suite.validator = validator.New()
	suite.orgService = service.NewOrganizationService(suite.mockOrgRepo, suite.mockEmployeeRepo, suite.hasher, suite.validator)
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) validCreateRequest() *service.CreateOrganizationRequest {
	return &service.CreateOrganizationRequest{
		Name:   "Acme Logistics",
		Sector: "Transportation",
		TaxID:  "12.345.678/0001-95",
		City:   "Sao Paulo",
	}
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_Success() {
	req := suite.validCreateRequest()

	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		assert.Equal(suite.T(), "12345678000195", org.TaxID)
		assert.True(suite.T(), org.IsActive)
		org.ID = uuid.New()
		return nil
	})

	resp, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "Acme Logistics", resp.Name)
	assert.Equal(suite.T(), "12345678000195", resp.TaxID)
	assert.True(suite.T(), resp.IsActive)
	assert.Nil(suite.T(), resp.Employee)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_DuplicateTaxID() {
	req := suite.validCreateRequest()
	existing := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, TaxID: "12345678000195"}

	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(existing, nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_UniqueViolationAtWrite() {
	// The pre-check passes but a concurrent writer wins the unique index
	req := suite.validCreateRequest()

	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_ValidationError() {
	req := &service.CreateOrganizationRequest{Name: "", Sector: "Tech", TaxID: "123", City: "Recife"}

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_WithEmployee_Success() {
	req := suite.validCreateRequest()
	req.Employee = &service.InitialEmployeeRequest{
		Name:     "Joana Prado",
		Email:    "joana@acme.example",
		Position: "Director",
		Password: "correct-horse-battery",
	}

	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmployeeRepo.EXPECT().GetByEmail("joana@acme.example").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().CreateWithEmployee(gomock.Any(), gomock.Any()).DoAndReturn(func(org *models.Organization, employee *models.Employee) error {
		assert.Equal(suite.T(), "$2a$10$stubbedhash", employee.PasswordHash)
		assert.Equal(suite.T(), models.EmployeeStatusActive, employee.Status)
		org.ID = uuid.New()
		employee.ID = uuid.New()
		employee.OrganizationID = org.ID
		return nil
	})

	resp, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.NotNil(suite.T(), resp.Employee)
	assert.Equal(suite.T(), "joana@acme.example", resp.Employee.Email)
	assert.Equal(suite.T(), resp.ID, resp.Employee.OrganizationID)
	assert.Equal(suite.T(), string(models.EmployeeStatusActive), resp.Employee.Status)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_WithEmployee_DuplicateEmail() {
	req := suite.validCreateRequest()
	req.Employee = &service.InitialEmployeeRequest{
		Name:     "Joana Prado",
		Email:    "taken@acme.example",
		Position: "Director",
		Password: "correct-horse-battery",
	}
	existing := &models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "taken@acme.example"}

	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmployeeRepo.EXPECT().GetByEmail("taken@acme.example").Return(existing, nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeExists)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_WithEmployee_RaceDisambiguation() {
	// The transaction hits a unique index; a surviving tax id holder means
	// the organization lost the race, otherwise the email did.
	req := suite.validCreateRequest()
	req.Employee = &service.InitialEmployeeRequest{
		Name:     "Joana Prado",
		Email:    "joana@acme.example",
		Position: "Director",
		Password: "correct-horse-battery",
	}

	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmployeeRepo.EXPECT().GetByEmail("joana@acme.example").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().CreateWithEmployee(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)
	suite.mockOrgRepo.EXPECT().GetByTaxID("12345678000195").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeExists)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_Success() {
	id := uuid.New()
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:      "Acme Logistics",
		Sector:    "Transportation",
		TaxID:     "12345678000195",
		City:      "Sao Paulo",
		IsActive:  true,
	}

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)

	resp, err := suite.orgService.GetByID(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, resp.ID)
	assert.Nil(suite.T(), resp.DeactivatedAt)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_NotFound() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orgService.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_DefaultPagination() {
	// page=0, limit=0 normalize to page=1, limit=10 => offset=0
	orgs := []models.Organization{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme", TaxID: "12345678000195", IsActive: true},
	}
	suite.mockOrgRepo.EXPECT().GetAll(10, 0).Return(orgs, int64(25), nil)

	resp, err := suite.orgService.GetAll(0, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 10, resp.Limit)
	assert.Equal(suite.T(), int64(25), resp.Total)
	assert.Equal(suite.T(), 3, resp.TotalPages)
	assert.Len(suite.T(), resp.Items, 1)
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_LimitClamped() {
	// limit=500 clamps to 100; page=3 => offset=200
	suite.mockOrgRepo.EXPECT().GetAll(100, 200).Return([]models.Organization{}, int64(0), nil)

	resp, err := suite.orgService.GetAll(3, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, resp.Limit)
	assert.Equal(suite.T(), 0, resp.TotalPages)
	assert.Len(suite.T(), resp.Items, 0)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_Success() {
	id := uuid.New()
	org := &models.Organization{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Acme Logistics",
		Sector:    "Transportation",
		TaxID:     "12345678000195",
		City:      "Sao Paulo",
		IsActive:  true,
	}
	newName := "Acme Global"

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockOrgRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Organization) error {
		assert.Equal(suite.T(), "Acme Global", updated.Name)
		assert.Equal(suite.T(), "12345678000195", updated.TaxID)
		return nil
	})

	resp, err := suite.orgService.Update(id, &service.UpdateOrganizationRequest{Name: &newName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Global", resp.Name)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_SameTaxIDSkipsCheck() {
	// Re-submitting the current tax id, formatted differently, must not
	// trip the uniqueness check against the organization itself.
	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: true}
	sameFormatted := "12.345.678/0001-95"

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockOrgRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.orgService.Update(id, &service.UpdateOrganizationRequest{TaxID: &sameFormatted})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "12345678000195", resp.TaxID)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_TaxIDConflict() {
	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: true}
	holder := &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, TaxID: "98765432000110"}
	newTaxID := "98765432000110"

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockOrgRepo.EXPECT().GetByTaxID("98765432000110").Return(holder, nil)

	resp, err := suite.orgService.Update(id, &service.UpdateOrganizationRequest{TaxID: &newTaxID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_NotFound() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orgService.Update(id, &service.UpdateOrganizationRequest{})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestDeactivateOrganization_Success() {
	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: true}

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockEmployeeRepo.EXPECT().CountActiveByOrganization(id).Return(int64(0), nil)
	suite.mockOrgRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Organization) error {
		assert.False(suite.T(), updated.IsActive)
		assert.NotNil(suite.T(), updated.DeactivatedAt)
		return nil
	})

	resp, err := suite.orgService.Deactivate(id)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsActive)
	assert.NotNil(suite.T(), resp.DeactivatedAt)
}

func (suite *OrganizationServiceTestSuite) TestDeactivateOrganization_BlockedByActiveEmployees() {
	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: true}

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockEmployeeRepo.EXPECT().CountActiveByOrganization(id).Return(int64(3), nil)

	resp, err := suite.orgService.Deactivate(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationHasActiveEmployees)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_Success() {
	id := uuid.New()
	deactivatedAt := time.Now()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: false, DeactivatedAt: &deactivatedAt}

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockEmployeeRepo.EXPECT().CountActiveByOrganization(id).Return(int64(0), nil)
	suite.mockOrgRepo.EXPECT().Delete(id).Return(nil)

	err := suite.orgService.Delete(id)

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_StillActive() {
	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: true}

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)

	err := suite.orgService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationActive)
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_BlockedByActiveEmployees() {
	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, TaxID: "12345678000195", IsActive: false}

	suite.mockOrgRepo.EXPECT().GetByID(id).Return(org, nil)
	suite.mockEmployeeRepo.EXPECT().CountActiveByOrganization(id).Return(int64(1), nil)

	err := suite.orgService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationHasActiveEmployees)
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_NotFound() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.orgService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
