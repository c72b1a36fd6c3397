package reconcile

import (
	"context"
	"fmt"

	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/logger"

	"github.com/google/uuid"
)

// SyncReport summarizes one push cycle for a subject
type SyncReport struct {
	Attempted int `json:"attempted"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
	// Discarded counts outcomes dropped by the revision guard: the record
	// was mutated locally while the push was in flight, so the newer local
	// write wins and stays pending.
	Discarded int `json:"discarded"`
}

// Coordinator drives the ledger across the reconciliation boundary. It
// snapshots pending records with their revisions before pushing, so results
// arriving after a concurrent local mutation (or after the caller abandoned
// the push) are safely discarded by the ledger's revision guard.
type Coordinator struct {
	ledger *ledger.Ledger
	client Reconciler
	log    *logger.Logger
}

// NewCoordinator creates a reconciliation coordinator
func NewCoordinator(l *ledger.Ledger, client Reconciler, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.New()
	}
	return &Coordinator{ledger: l, client: client, log: log}
}

// SyncSubject pushes every pending record for the subject and applies the
// outcomes. Records the backend rejected become failed and wait for an
// explicit retry; a transport-level error leaves everything pending.
func (c *Coordinator) SyncSubject(ctx context.Context, subjectID uuid.UUID) (*SyncReport, error) {
	pending := c.ledger.PendingFor(subjectID)
	report := &SyncReport{Attempted: len(pending)}
	if len(pending) == 0 {
		return report, nil
	}

	revisions := make(map[string]int64, len(pending))
	for _, rec := range pending {
		revisions[rec.MilestoneID] = rec.LocalRevision
	}

	outcomes, err := c.client.PushPending(ctx, subjectID, pending)
	if err != nil {
		return nil, fmt.Errorf("pushing pending records for subject %s: %w", subjectID, err)
	}

	for _, outcome := range outcomes {
		revision, ok := revisions[outcome.MilestoneID]
		if !ok {
			c.log.WithField("milestone_id", outcome.MilestoneID).
				Warn("push outcome for a record that was not in the snapshot, discarding")
			report.Discarded++
			continue
		}
		if outcome.Synced() {
			if c.ledger.MarkSynced(subjectID, outcome.MilestoneID, revision, outcome.ServerRevision) {
				report.Synced++
			} else {
				report.Discarded++
			}
			continue
		}
		c.log.WithFields(map[string]interface{}{
			"subject_id":   subjectID,
			"milestone_id": outcome.MilestoneID,
		}).Warnf("backend rejected completion record: %v", outcome.Err)
		if c.ledger.MarkFailed(subjectID, outcome.MilestoneID, revision) {
			report.Failed++
		} else {
			report.Discarded++
		}
	}
	return report, nil
}

// SeedSubject pulls the server-authoritative records for a subject and merges
// them into the ledger. Locally pending or failed records are never
// overwritten by the pull. Returns the number of records applied.
func (c *Coordinator) SeedSubject(ctx context.Context, subjectID uuid.UUID) (int, error) {
	records, err := c.client.PullServerState(ctx, subjectID)
	if err != nil {
		return 0, fmt.Errorf("pulling server state for subject %s: %w", subjectID, err)
	}
	applied := c.ledger.ApplyServerRecords(subjectID, records)
	c.log.WithFields(map[string]interface{}{
		"subject_id": subjectID,
		"pulled":     len(records),
		"applied":    applied,
	}).Debug("seeded ledger from server state")
	return applied, nil
}
