package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"maternal-care-backend/internal/database/models"
	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/mocks"
	"maternal-care-backend/internal/reconcile"
	"maternal-care-backend/internal/schedule"
	"maternal-care-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CompletionServiceTestSuite defines the test suite for CompletionService
type CompletionServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockChildRepo     *mocks.MockChildRepositoryInterface
	mockPregnancyRepo *mocks.MockPregnancyRepositoryInterface
	mockRecordRepo    *mocks.MockCompletionRecordRepositoryInterface
	mockSyncer        *mocks.MockSubjectSyncer
	ledger            *ledger.Ledger
	service           *service.CompletionService
}

// SetupTest sets up the test suite
func (suite *CompletionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChildRepo = mocks.NewMockChildRepositoryInterface(suite.ctrl)
	suite.mockPregnancyRepo = mocks.NewMockPregnancyRepositoryInterface(suite.ctrl)
	suite.mockRecordRepo = mocks.NewMockCompletionRecordRepositoryInterface(suite.ctrl)
	suite.mockSyncer = mocks.NewMockSubjectSyncer(suite.ctrl)

	registry := schedule.NewRegistry()
	suite.Require().NoError(registry.Register(&schedule.Template{
		Domain:  schedule.DomainVaccination,
		Version: 1,
		Milestones: []schedule.MilestoneDef{
			{ID: "bcg", Offset: 0, Label: "BCG"},
			{ID: "penta-1", Offset: 2, Label: "Pentavalent 1"},
		},
	}))
	suite.Require().NoError(registry.Register(&schedule.Template{
		Domain:  schedule.DomainPrenatalCheckup,
		Version: 1,
		Milestones: []schedule.MilestoneDef{
			{ID: "anc-1", Offset: 12, Label: "ANC Visit 1"},
		},
	}))

	suite.ledger = ledger.New()
	suite.service = service.NewCompletionService(
		suite.ledger,
		registry,
		suite.mockChildRepo,
		suite.mockPregnancyRepo,
		suite.mockRecordRepo,
		suite.mockSyncer,
		validator.New(),
		nil,
	)
}

// TearDownTest cleans up after each test
func (suite *CompletionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestMarkVaccination tests recording a vaccination completion
func (suite *CompletionServiceTestSuite) TestMarkVaccination() {
	subjectID := uuid.New()
	suite.mockChildRepo.EXPECT().GetByID(subjectID).Return(&models.Child{}, nil)
	suite.mockRecordRepo.EXPECT().Save(gomock.Any(), "vaccination").Return(nil)

	completedAt := time.Now().Add(-time.Hour).UTC()
	resp, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{
		CompletedAt: completedAt.Format(time.RFC3339),
		Vaccination: &ledger.VaccinationDetails{BatchNumber: "BCG-001", AdministeredBy: "Nurse Wanjiku"},
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("bcg", resp.MilestoneID)
	suite.Equal(ledger.SyncStatusPending, resp.SyncStatus)
	suite.Equal(int64(1), resp.LocalRevision)
	suite.Require().NotNil(resp.Details.Vaccination)
	suite.Equal("BCG-001", resp.Details.Vaccination.BatchNumber)
}

// TestMarkDefaultsCompletedAt tests that the completion time defaults to now
func (suite *CompletionServiceTestSuite) TestMarkDefaultsCompletedAt() {
	subjectID := uuid.New()
	suite.mockChildRepo.EXPECT().GetByID(subjectID).Return(&models.Child{}, nil)
	suite.mockRecordRepo.EXPECT().Save(gomock.Any(), "vaccination").Return(nil)

	resp, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{})

	suite.NoError(err)
	suite.NotEmpty(resp.CompletedAt)
}

// TestMarkAgainBumpsRevision tests that re-marking stays pending with a
// higher revision
func (suite *CompletionServiceTestSuite) TestMarkAgainBumpsRevision() {
	subjectID := uuid.New()
	suite.mockChildRepo.EXPECT().GetByID(subjectID).Return(&models.Child{}, nil).Times(2)
	suite.mockRecordRepo.EXPECT().Save(gomock.Any(), "vaccination").Return(nil).Times(2)

	_, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{})
	suite.NoError(err)

	resp, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{})
	suite.NoError(err)
	suite.Equal(int64(2), resp.LocalRevision)
	suite.Equal(ledger.SyncStatusPending, resp.SyncStatus)
}

// TestMarkUnknownMilestone tests rejecting a milestone outside the template
func (suite *CompletionServiceTestSuite) TestMarkUnknownMilestone() {
	resp, err := suite.service.Mark(schedule.DomainVaccination, uuid.New(), "hpv-1", &service.MarkCompletionRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMilestoneNotFound)
}

// TestMarkInvalidDomain tests rejecting an unknown domain
func (suite *CompletionServiceTestSuite) TestMarkInvalidDomain() {
	resp, err := suite.service.Mark(schedule.Domain("dental"), uuid.New(), "bcg", &service.MarkCompletionRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDomain)
}

// TestMarkSubjectNotFound tests the subject existence check
func (suite *CompletionServiceTestSuite) TestMarkSubjectNotFound() {
	subjectID := uuid.New()
	suite.mockChildRepo.EXPECT().GetByID(subjectID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSubjectNotFound)
}

// TestMarkInactivePregnancy tests that closed pregnancies reject completions
func (suite *CompletionServiceTestSuite) TestMarkInactivePregnancy() {
	subjectID := uuid.New()
	suite.mockPregnancyRepo.EXPECT().GetByID(subjectID).Return(&models.Pregnancy{
		Status: models.PregnancyStatusDelivered,
	}, nil)

	resp, err := suite.service.Mark(schedule.DomainPrenatalCheckup, subjectID, "anc-1", &service.MarkCompletionRequest{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrPregnancyNotActive)
}

// TestMarkFutureCompletedAt tests rejecting a completion time after now
func (suite *CompletionServiceTestSuite) TestMarkFutureCompletedAt() {
	subjectID := uuid.New()
	suite.mockChildRepo.EXPECT().GetByID(subjectID).Return(&models.Child{}, nil)

	resp, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{
		CompletedAt: time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCompletedInFuture)
}

// TestMarkWrongDetailsBranch tests rejecting details from another domain
func (suite *CompletionServiceTestSuite) TestMarkWrongDetailsBranch() {
	subjectID := uuid.New()
	suite.mockChildRepo.EXPECT().GetByID(subjectID).Return(&models.Child{}, nil)

	resp, err := suite.service.Mark(schedule.DomainVaccination, subjectID, "bcg", &service.MarkCompletionRequest{
		Checkup: &ledger.CheckupDetails{WeightKg: 60},
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMilestoneNotInDomain)
}

// TestRevert tests removing a completion
func (suite *CompletionServiceTestSuite) TestRevert() {
	subjectID := uuid.New()
	suite.ledger.UpsertCompletion(subjectID, "bcg", time.Now().Add(-time.Hour), ledger.CompletionDetails{})
	suite.mockRecordRepo.EXPECT().DeleteByKey(subjectID, "bcg").Return(nil)

	suite.NoError(suite.service.Revert(schedule.DomainVaccination, subjectID, "bcg"))
	suite.Equal(0, suite.ledger.Len())
}

// TestRevertMissingRecord tests reverting a milestone that was never marked
func (suite *CompletionServiceTestSuite) TestRevertMissingRecord() {
	err := suite.service.Revert(schedule.DomainVaccination, uuid.New(), "bcg")

	suite.ErrorIs(err, apperrors.ErrCompletionRecordNotFound)
}

// TestRetry tests moving a failed entry back to pending
func (suite *CompletionServiceTestSuite) TestRetry() {
	subjectID := uuid.New()
	record := suite.ledger.UpsertCompletion(subjectID, "bcg", time.Now().Add(-time.Hour), ledger.CompletionDetails{})
	suite.Require().True(suite.ledger.MarkFailed(subjectID, "bcg", record.LocalRevision))
	suite.mockRecordRepo.EXPECT().Save(gomock.Any(), "vaccination").Return(nil)

	resp, err := suite.service.Retry(schedule.DomainVaccination, subjectID, "bcg")

	suite.NoError(err)
	suite.Equal(ledger.SyncStatusPending, resp.SyncStatus)
	suite.Equal(record.LocalRevision+1, resp.LocalRevision)
}

// TestRetryNotFailed tests that only failed entries can be retried
func (suite *CompletionServiceTestSuite) TestRetryNotFailed() {
	subjectID := uuid.New()
	suite.ledger.UpsertCompletion(subjectID, "bcg", time.Now().Add(-time.Hour), ledger.CompletionDetails{})

	resp, err := suite.service.Retry(schedule.DomainVaccination, subjectID, "bcg")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrRecordNotFailed)
}

// TestList tests listing a subject's ledger entries
func (suite *CompletionServiceTestSuite) TestList() {
	subjectID := uuid.New()
	suite.ledger.UpsertCompletion(subjectID, "bcg", time.Now().Add(-time.Hour), ledger.CompletionDetails{})
	suite.ledger.UpsertCompletion(subjectID, "penta-1", time.Now().Add(-time.Minute), ledger.CompletionDetails{})
	suite.ledger.UpsertCompletion(uuid.New(), "bcg", time.Now().Add(-time.Hour), ledger.CompletionDetails{})

	resp, err := suite.service.List(subjectID)

	suite.NoError(err)
	suite.Equal(2, resp.Total)
	suite.Equal(subjectID, resp.SubjectID)
}

// TestSync tests a reconciliation run
func (suite *CompletionServiceTestSuite) TestSync() {
	subjectID := uuid.New()
	suite.ledger.UpsertCompletion(subjectID, "bcg", time.Now().Add(-time.Hour), ledger.CompletionDetails{})

	suite.mockSyncer.EXPECT().SyncSubject(gomock.Any(), subjectID).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) (*reconcile.SyncReport, error) {
			record, ok := suite.ledger.Record(id, "bcg")
			suite.Require().True(ok)
			suite.Require().True(suite.ledger.MarkSynced(id, "bcg", record.LocalRevision, 7))
			return &reconcile.SyncReport{Attempted: 1, Synced: 1}, nil
		})
	suite.mockRecordRepo.EXPECT().Save(gomock.Any(), "vaccination").Return(nil)

	resp, err := suite.service.Sync(context.Background(), subjectID)

	suite.NoError(err)
	suite.Equal(1, resp.Attempted)
	suite.Equal(1, resp.Synced)
	suite.Equal(0, resp.Failed)
}

// TestSyncError tests that transport errors surface to the caller
func (suite *CompletionServiceTestSuite) TestSyncError() {
	subjectID := uuid.New()
	suite.mockSyncer.EXPECT().SyncSubject(gomock.Any(), subjectID).Return(nil, errors.New("backend unreachable"))

	resp, err := suite.service.Sync(context.Background(), subjectID)

	suite.Nil(resp)
	suite.Error(err)
}

// TestSeed tests warming a subject from the backend of record
func (suite *CompletionServiceTestSuite) TestSeed() {
	subjectID := uuid.New()
	suite.mockSyncer.EXPECT().SeedSubject(gomock.Any(), subjectID).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) (int, error) {
			return suite.ledger.ApplyServerRecords(id, []ledger.CompletionRecord{
				{SubjectID: id, MilestoneID: "bcg", CompletedAt: time.Now().Add(-time.Hour), ServerRevision: 3},
			}), nil
		})
	suite.mockRecordRepo.EXPECT().Save(gomock.Any(), "vaccination").Return(nil)

	applied, err := suite.service.Seed(context.Background(), subjectID)

	suite.NoError(err)
	suite.Equal(1, applied)
}

// TestCompletionServiceTestSuite runs the test suite
func TestCompletionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompletionServiceTestSuite))
}
