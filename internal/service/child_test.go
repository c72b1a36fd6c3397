package service_test

import (
	"testing"
	"time"

	"maternal-care-backend/internal/database/models"
	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/mocks"
	"maternal-care-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ChildServiceTestSuite defines the test suite for ChildService
type ChildServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockChildRepositoryInterface
	service  *service.ChildService
}

// SetupTest sets up the test suite
func (suite *ChildServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockChildRepositoryInterface(suite.ctrl)
	suite.service = service.NewChildService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ChildServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSuccess tests registering a child
func (suite *ChildServiceTestSuite) TestCreateSuccess() {
	req := &service.CreateChildRequest{
		FirstName:           "Amani",
		LastName:            "Odhiambo",
		Sex:                 models.SexFemale,
		DateOfBirth:         "2024-01-10",
		MedicalRecordNumber: "MRN-1001",
		GuardianName:        "Grace Odhiambo",
	}

	suite.mockRepo.EXPECT().GetByMedicalRecordNumber("MRN-1001").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(child *models.Child) error {
		child.ID = uuid.New()
		child.CreatedAt = time.Now()
		child.UpdatedAt = time.Now()
		return nil
	})

	resp, err := suite.service.Create(req)

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("Amani", resp.FirstName)
	suite.Equal("2024-01-10", resp.DateOfBirth)
	suite.Equal("MRN-1001", resp.MedicalRecordNumber)
}

// TestCreateDuplicateMRN tests the duplicate medical record number check
func (suite *ChildServiceTestSuite) TestCreateDuplicateMRN() {
	req := &service.CreateChildRequest{
		FirstName:           "Amani",
		LastName:            "Odhiambo",
		Sex:                 models.SexFemale,
		DateOfBirth:         "2024-01-10",
		MedicalRecordNumber: "MRN-1001",
	}

	suite.mockRepo.EXPECT().GetByMedicalRecordNumber("MRN-1001").Return(&models.Child{}, nil)

	resp, err := suite.service.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrChildExists)
}

// TestCreateValidation tests request validation
func (suite *ChildServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		request *service.CreateChildRequest
	}{
		{
			name:    "Missing required fields",
			request: &service.CreateChildRequest{},
		},
		{
			name: "Malformed date of birth",
			request: &service.CreateChildRequest{
				FirstName:           "Amani",
				LastName:            "Odhiambo",
				Sex:                 models.SexFemale,
				DateOfBirth:         "10/01/2024",
				MedicalRecordNumber: "MRN-1001",
			},
		},
		{
			name: "Negative birth weight",
			request: &service.CreateChildRequest{
				FirstName:           "Amani",
				LastName:            "Odhiambo",
				Sex:                 models.SexFemale,
				DateOfBirth:         "2024-01-10",
				MedicalRecordNumber: "MRN-1001",
				BirthWeightGrams:    -100,
			},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			resp, err := suite.service.Create(tc.request)
			suite.Nil(resp)
			suite.Error(err)
			suite.Contains(err.Error(), "validation failed")
		})
	}
}

// TestCreateFutureDateOfBirth tests rejecting a date of birth after today
func (suite *ChildServiceTestSuite) TestCreateFutureDateOfBirth() {
	req := &service.CreateChildRequest{
		FirstName:           "Amani",
		LastName:            "Odhiambo",
		Sex:                 models.SexFemale,
		DateOfBirth:         time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		MedicalRecordNumber: "MRN-1001",
	}

	resp, err := suite.service.Create(req)

	suite.Nil(resp)
	suite.Error(err)
}

// TestCreateInvalidSex tests rejecting an unknown sex value
func (suite *ChildServiceTestSuite) TestCreateInvalidSex() {
	req := &service.CreateChildRequest{
		FirstName:           "Amani",
		LastName:            "Odhiambo",
		Sex:                 models.Sex("unknown"),
		DateOfBirth:         "2024-01-10",
		MedicalRecordNumber: "MRN-1001",
	}

	resp, err := suite.service.Create(req)

	suite.Nil(resp)
	suite.Error(err)
}

// TestGetByIDNotFound tests the not found mapping
func (suite *ChildServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrChildNotFound)
	suite.True(apperrors.IsNotFound(err))
}

// TestListDefaultsPagination tests pagination defaults
func (suite *ChildServiceTestSuite) TestListDefaultsPagination() {
	suite.mockRepo.EXPECT().List(20, 0).Return([]models.Child{}, int64(0), nil)

	resp, err := suite.service.List(0, 500)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
}

// TestUpdateNotFound tests updating a missing child
func (suite *ChildServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Update(id, &service.UpdateChildRequest{FirstName: "Amani", LastName: "Odhiambo"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrChildNotFound)
}

// TestDelete tests deleting a child
func (suite *ChildServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Child{}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.service.Delete(id))
}

// TestChildServiceTestSuite runs the test suite
func TestChildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChildServiceTestSuite))
}
