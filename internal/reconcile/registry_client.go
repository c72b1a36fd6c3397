package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"maternal-care-backend/internal/ledger"

	"github.com/google/uuid"
)

// RegistryClient talks to the national health registry's HTTP API. It is the
// production Reconciler; the coordinator never sees the transport.
type RegistryClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewRegistryClient creates a registry client for the given base URL. The
// token is sent as a bearer credential on every request.
func NewRegistryClient(baseURL, token string) *RegistryClient {
	return &RegistryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Reconciler = (*RegistryClient)(nil)

// registryPushRequest is the batch upload body the registry accepts
type registryPushRequest struct {
	Records []registryRecord `json:"records"`
}

// registryRecord is the registry's wire form of one completion
type registryRecord struct {
	MilestoneID    string                   `json:"milestone_id"`
	CompletedAt    time.Time                `json:"completed_at"`
	Details        ledger.CompletionDetails `json:"details"`
	LocalRevision  int64                    `json:"local_revision"`
	ServerRevision int64                    `json:"server_revision,omitempty"`
}

// registryPushResponse carries the registry's per-record verdicts
type registryPushResponse struct {
	Results []struct {
		MilestoneID    string `json:"milestone_id"`
		ServerRevision int64  `json:"server_revision"`
		Error          string `json:"error,omitempty"`
	} `json:"results"`
}

// registryPullResponse is the registry's state dump for one subject
type registryPullResponse struct {
	Records []registryRecord `json:"records"`
}

// PushPending uploads the pending records as one batch. A transport or
// non-2xx failure fails the attempt as a whole; otherwise the registry's
// per-record verdicts become the outcomes.
func (c *RegistryClient) PushPending(ctx context.Context, subjectID uuid.UUID, records []ledger.CompletionRecord) ([]PushOutcome, error) {
	if len(records) == 0 {
		return nil, nil
	}

	body := registryPushRequest{Records: make([]registryRecord, 0, len(records))}
	for _, record := range records {
		body.Records = append(body.Records, registryRecord{
			MilestoneID:    record.MilestoneID,
			CompletedAt:    record.CompletedAt,
			Details:        record.Details,
			LocalRevision:  record.LocalRevision,
			ServerRevision: record.ServerRevision,
		})
	}

	var pushResp registryPushResponse
	url := fmt.Sprintf("%s/api/v1/subjects/%s/completions", c.baseURL, subjectID)
	if err := c.doJSON(ctx, http.MethodPost, url, body, &pushResp); err != nil {
		return nil, fmt.Errorf("failed to push completions to registry: %w", err)
	}

	outcomes := make([]PushOutcome, 0, len(pushResp.Results))
	for _, result := range pushResp.Results {
		outcome := PushOutcome{
			MilestoneID:    result.MilestoneID,
			ServerRevision: result.ServerRevision,
		}
		if result.Error != "" {
			outcome.Err = fmt.Errorf("registry rejected record: %s", result.Error)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// PullServerState fetches the registry's records for a subject
func (c *RegistryClient) PullServerState(ctx context.Context, subjectID uuid.UUID) ([]ledger.CompletionRecord, error) {
	var pullResp registryPullResponse
	url := fmt.Sprintf("%s/api/v1/subjects/%s/completions", c.baseURL, subjectID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &pullResp); err != nil {
		return nil, fmt.Errorf("failed to pull registry state: %w", err)
	}

	records := make([]ledger.CompletionRecord, 0, len(pullResp.Records))
	for _, wire := range pullResp.Records {
		records = append(records, ledger.CompletionRecord{
			SubjectID:      subjectID,
			MilestoneID:    wire.MilestoneID,
			CompletedAt:    wire.CompletedAt,
			Details:        wire.Details,
			SyncStatus:     ledger.SyncStatusSynced,
			ServerRevision: wire.ServerRevision,
		})
	}
	return records, nil
}

// doJSON performs an authenticated request with a JSON body and decodes the
// JSON response into out.
func (c *RegistryClient) doJSON(ctx context.Context, method, url string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("registry request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode registry response: %w", err)
	}
	return nil
}
