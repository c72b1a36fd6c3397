package reconcile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RegistryClientTestSuite defines the test suite for RegistryClient
type RegistryClientTestSuite struct {
	suite.Suite
	mockServer *httptest.Server
}

func (suite *RegistryClientTestSuite) TearDownTest() {
	if suite.mockServer != nil {
		suite.mockServer.Close()
	}
}

func (suite *RegistryClientTestSuite) TestPushPending_Success() {
	subjectID := uuid.New()

	suite.mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Contains(suite.T(), r.URL.Path, "/api/v1/subjects/"+subjectID.String()+"/completions")
		assert.Equal(suite.T(), "Bearer test-token", r.Header.Get("Authorization"))

		var body struct {
			Records []struct {
				MilestoneID   string `json:"milestone_id"`
				LocalRevision int64  `json:"local_revision"`
			} `json:"records"`
		}
		require.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&body))
		require.Len(suite.T(), body.Records, 2)
		assert.Equal(suite.T(), "bcg", body.Records[0].MilestoneID)

		response := map[string]interface{}{
			"results": []map[string]interface{}{
				{"milestone_id": "bcg", "server_revision": 7},
				{"milestone_id": "penta-1", "error": "duplicate submission"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))

	client := reconcile.NewRegistryClient(suite.mockServer.URL, "test-token")
	records := []ledger.CompletionRecord{
		{SubjectID: subjectID, MilestoneID: "bcg", CompletedAt: time.Now().UTC(), LocalRevision: 1},
		{SubjectID: subjectID, MilestoneID: "penta-1", CompletedAt: time.Now().UTC(), LocalRevision: 1},
	}

	outcomes, err := client.PushPending(context.Background(), subjectID, records)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), outcomes, 2)

	assert.Equal(suite.T(), "bcg", outcomes[0].MilestoneID)
	assert.True(suite.T(), outcomes[0].Synced())
	assert.Equal(suite.T(), int64(7), outcomes[0].ServerRevision)

	assert.Equal(suite.T(), "penta-1", outcomes[1].MilestoneID)
	assert.False(suite.T(), outcomes[1].Synced())
	assert.Contains(suite.T(), outcomes[1].Err.Error(), "duplicate submission")
}

func (suite *RegistryClientTestSuite) TestPushPending_EmptyBatch() {
	client := reconcile.NewRegistryClient("http://registry.invalid", "")

	outcomes, err := client.PushPending(context.Background(), uuid.New(), nil)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), outcomes)
}

func (suite *RegistryClientTestSuite) TestPushPending_ServerError() {
	suite.mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "registry unavailable", http.StatusServiceUnavailable)
	}))

	client := reconcile.NewRegistryClient(suite.mockServer.URL, "")
	records := []ledger.CompletionRecord{
		{SubjectID: uuid.New(), MilestoneID: "bcg", CompletedAt: time.Now().UTC(), LocalRevision: 1},
	}

	outcomes, err := client.PushPending(context.Background(), uuid.New(), records)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), outcomes)
	assert.Contains(suite.T(), err.Error(), "status=503")
}

func (suite *RegistryClientTestSuite) TestPullServerState_Success() {
	subjectID := uuid.New()
	completedAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	suite.mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodGet, r.Method)

		response := map[string]interface{}{
			"records": []map[string]interface{}{
				{
					"milestone_id":    "bcg",
					"completed_at":    completedAt.Format(time.RFC3339),
					"server_revision": 3,
					"details": map[string]interface{}{
						"vaccination": map[string]string{"batch_number": "B-77"},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))

	client := reconcile.NewRegistryClient(suite.mockServer.URL, "")

	records, err := client.PullServerState(context.Background(), subjectID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 1)

	assert.Equal(suite.T(), subjectID, records[0].SubjectID)
	assert.Equal(suite.T(), "bcg", records[0].MilestoneID)
	assert.True(suite.T(), records[0].CompletedAt.Equal(completedAt))
	assert.Equal(suite.T(), ledger.SyncStatusSynced, records[0].SyncStatus)
	assert.Equal(suite.T(), int64(3), records[0].ServerRevision)
	require.NotNil(suite.T(), records[0].Details.Vaccination)
	assert.Equal(suite.T(), "B-77", records[0].Details.Vaccination.BatchNumber)
}

func (suite *RegistryClientTestSuite) TestPullServerState_ServerError() {
	suite.mockServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not authorized", http.StatusUnauthorized)
	}))

	client := reconcile.NewRegistryClient(suite.mockServer.URL, "bad-token")

	records, err := client.PullServerState(context.Background(), uuid.New())
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), records)
}

func TestRegistryClientTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryClientTestSuite))
}
