//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"maternal-care-backend/internal/database/models"
	"maternal-care-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PregnancyRepositoryTestSuite tests the PregnancyRepository
type PregnancyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PregnancyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PregnancyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPregnancyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PregnancyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PregnancyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PregnancyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests creating and retrieving a pregnancy
func (suite *PregnancyRepositoryTestSuite) TestCreateAndGet() {
	pregnancy := suite.factories.Pregnancy.Create()
	suite.NoError(suite.repo.Create(pregnancy))

	found, err := suite.repo.GetByID(pregnancy.ID)
	suite.NoError(err)
	suite.Equal(models.PregnancyStatusActive, found.Status)
	suite.Equal(pregnancy.MotherName, found.MotherName)
}

// TestGetByStatus tests the status filter, ordered by expected delivery date
func (suite *PregnancyRepositoryTestSuite) TestGetByStatus() {
	later := suite.factories.Pregnancy.WithExpectedDeliveryDate(time.Now().AddDate(0, 0, 30*7))
	sooner := suite.factories.Pregnancy.WithExpectedDeliveryDate(time.Now().AddDate(0, 0, 5*7))
	delivered := suite.factories.Pregnancy.WithStatus(models.PregnancyStatusDelivered)
	suite.NoError(suite.repo.Create(later))
	suite.NoError(suite.repo.Create(sooner))
	suite.NoError(suite.repo.Create(delivered))

	active, total, err := suite.repo.GetByStatus(models.PregnancyStatusActive, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(active, 2)
	suite.Equal(sooner.ID, active[0].ID)
}

// TestList tests pagination across all pregnancies
func (suite *PregnancyRepositoryTestSuite) TestList() {
	for i := 0; i < 4; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Pregnancy.Create()))
	}

	pregnancies, total, err := suite.repo.List(2, 2)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(pregnancies, 2)
}

// TestUpdateStatus tests moving a pregnancy through its lifecycle
func (suite *PregnancyRepositoryTestSuite) TestUpdateStatus() {
	pregnancy := suite.factories.Pregnancy.Create()
	suite.NoError(suite.repo.Create(pregnancy))

	pregnancy.Status = models.PregnancyStatusDelivered
	suite.NoError(suite.repo.Update(pregnancy))

	found, err := suite.repo.GetByID(pregnancy.ID)
	suite.NoError(err)
	suite.Equal(models.PregnancyStatusDelivered, found.Status)
}

// TestPregnancyRepositoryTestSuite runs the test suite
func TestPregnancyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PregnancyRepositoryTestSuite))
}
