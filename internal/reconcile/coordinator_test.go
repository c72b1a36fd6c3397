package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/mocks"
	"maternal-care-backend/internal/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CoordinatorTestSuite defines the test suite for the reconciliation coordinator
type CoordinatorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	client      *mocks.MockReconciler
	ledger      *ledger.Ledger
	coordinator *reconcile.Coordinator
	subjectID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CoordinatorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.client = mocks.NewMockReconciler(suite.ctrl)
	suite.ledger = ledger.New()
	suite.coordinator = reconcile.NewCoordinator(suite.ledger, suite.client, nil)
	suite.subjectID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *CoordinatorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CoordinatorTestSuite) TestSyncSubjectNothingPending() {
	report, err := suite.coordinator.SyncSubject(context.Background(), suite.subjectID)
	suite.Require().NoError(err)
	suite.Equal(0, report.Attempted)
}

func (suite *CoordinatorTestSuite) TestSyncSubjectAppliesOutcomes() {
	now := time.Now().UTC()
	suite.ledger.UpsertCompletion(suite.subjectID, "bcg", now, ledger.CompletionDetails{})
	suite.ledger.UpsertCompletion(suite.subjectID, "penta-1", now, ledger.CompletionDetails{})

	suite.client.EXPECT().
		PushPending(gomock.Any(), suite.subjectID, gomock.Len(2)).
		Return([]reconcile.PushOutcome{
			{MilestoneID: "bcg", ServerRevision: 11},
			{MilestoneID: "penta-1", Err: errors.New("duplicate entry")},
		}, nil)

	report, err := suite.coordinator.SyncSubject(context.Background(), suite.subjectID)
	suite.Require().NoError(err)
	suite.Equal(2, report.Attempted)
	suite.Equal(1, report.Synced)
	suite.Equal(1, report.Failed)
	suite.Equal(0, report.Discarded)

	bcg, _ := suite.ledger.Record(suite.subjectID, "bcg")
	suite.Equal(ledger.SyncStatusSynced, bcg.SyncStatus)
	suite.Equal(int64(11), bcg.ServerRevision)

	penta, _ := suite.ledger.Record(suite.subjectID, "penta-1")
	suite.Equal(ledger.SyncStatusFailed, penta.SyncStatus)
}

func (suite *CoordinatorTestSuite) TestSyncSubjectTransportErrorLeavesPending() {
	suite.ledger.UpsertCompletion(suite.subjectID, "bcg", time.Now().UTC(), ledger.CompletionDetails{})

	suite.client.EXPECT().
		PushPending(gomock.Any(), suite.subjectID, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := suite.coordinator.SyncSubject(context.Background(), suite.subjectID)
	suite.Require().Error(err)

	rec, _ := suite.ledger.Record(suite.subjectID, "bcg")
	suite.Equal(ledger.SyncStatusPending, rec.SyncStatus)
}

func (suite *CoordinatorTestSuite) TestSyncSubjectDiscardsStaleOutcome() {
	// A local write lands between the push snapshot and the sync result:
	// the result is stale and the record must stay pending.
	now := time.Now().UTC()
	suite.ledger.UpsertCompletion(suite.subjectID, "bcg", now, ledger.CompletionDetails{})

	suite.client.EXPECT().
		PushPending(gomock.Any(), suite.subjectID, gomock.Any()).
		DoAndReturn(func(_ context.Context, subjectID uuid.UUID, _ []ledger.CompletionRecord) ([]reconcile.PushOutcome, error) {
			suite.ledger.UpsertCompletion(subjectID, "bcg", now.AddDate(0, 0, 1), ledger.CompletionDetails{})
			return []reconcile.PushOutcome{{MilestoneID: "bcg", ServerRevision: 3}}, nil
		})

	report, err := suite.coordinator.SyncSubject(context.Background(), suite.subjectID)
	suite.Require().NoError(err)
	suite.Equal(1, report.Discarded)
	suite.Equal(0, report.Synced)

	rec, _ := suite.ledger.Record(suite.subjectID, "bcg")
	suite.Equal(ledger.SyncStatusPending, rec.SyncStatus)
	suite.Equal(int64(0), rec.ServerRevision)
}

func (suite *CoordinatorTestSuite) TestSyncSubjectDiscardsUnknownOutcome() {
	suite.ledger.UpsertCompletion(suite.subjectID, "bcg", time.Now().UTC(), ledger.CompletionDetails{})

	suite.client.EXPECT().
		PushPending(gomock.Any(), suite.subjectID, gomock.Any()).
		Return([]reconcile.PushOutcome{
			{MilestoneID: "bcg", ServerRevision: 1},
			{MilestoneID: "never-pushed", ServerRevision: 2},
		}, nil)

	report, err := suite.coordinator.SyncSubject(context.Background(), suite.subjectID)
	suite.Require().NoError(err)
	suite.Equal(1, report.Synced)
	suite.Equal(1, report.Discarded)
}

func (suite *CoordinatorTestSuite) TestSeedSubject() {
	now := time.Now().UTC()
	suite.ledger.UpsertCompletion(suite.subjectID, "bcg", now, ledger.CompletionDetails{})

	suite.client.EXPECT().
		PullServerState(gomock.Any(), suite.subjectID).
		Return([]ledger.CompletionRecord{
			{SubjectID: suite.subjectID, MilestoneID: "bcg", CompletedAt: now.AddDate(0, 0, -2), ServerRevision: 1},
			{SubjectID: suite.subjectID, MilestoneID: "penta-1", CompletedAt: now.AddDate(0, 0, -1), ServerRevision: 2},
		}, nil)

	applied, err := suite.coordinator.SeedSubject(context.Background(), suite.subjectID)
	suite.Require().NoError(err)
	suite.Equal(1, applied)

	// The pending local record wins over the pulled copy.
	bcg, _ := suite.ledger.Record(suite.subjectID, "bcg")
	suite.Equal(ledger.SyncStatusPending, bcg.SyncStatus)
}

func (suite *CoordinatorTestSuite) TestSeedSubjectPullError() {
	suite.client.EXPECT().
		PullServerState(gomock.Any(), suite.subjectID).
		Return(nil, errors.New("gateway timeout"))

	_, err := suite.coordinator.SeedSubject(context.Background(), suite.subjectID)
	suite.Error(err)
}

// TestCoordinatorTestSuite runs the test suite
func TestCoordinatorTestSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func TestPushOutcomeSynced(t *testing.T) {
	assert.True(t, reconcile.PushOutcome{MilestoneID: "bcg"}.Synced())
	assert.False(t, reconcile.PushOutcome{MilestoneID: "bcg", Err: errors.New("rejected")}.Synced())
	require.True(t, reconcile.PushOutcome{ServerRevision: 1}.Synced())
}
