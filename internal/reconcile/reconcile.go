// Package reconcile defines the boundary between the local completion ledger
// and the backend of record, and the coordinator that moves pending records
// across it.
package reconcile

import (
	"context"

	"maternal-care-backend/internal/ledger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reconcile.go -destination=../mocks/reconcile_mocks.go -package=mocks

// PushOutcome is the per-record result of a push attempt
type PushOutcome struct {
	MilestoneID    string
	ServerRevision int64
	Err            error
}

// Synced reports whether the backend accepted the record
func (o PushOutcome) Synced() bool {
	return o.Err == nil
}

// Reconciler is the contract the core requires from its environment. How
// records travel (REST, message queue, bulk import) is the implementation's
// concern; retry and backoff policy live there too, never here.
type Reconciler interface {
	// PushPending attempts to send every given pending record to the
	// backend and reports a per-record outcome. A returned error means the
	// attempt as a whole did not reach the backend.
	PushPending(ctx context.Context, subjectID uuid.UUID, records []ledger.CompletionRecord) ([]PushOutcome, error)

	// PullServerState returns the server-authoritative records for a
	// subject, used to seed the ledger on first load.
	PullServerState(ctx context.Context, subjectID uuid.UUID) ([]ledger.CompletionRecord, error)
}
