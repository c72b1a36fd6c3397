// Package ledger implements the local completion store for care schedules:
// one record per (subject, milestone) key, written optimistically before the
// backend acknowledges it and reconciled afterwards.
package ledger

import (
	"sort"
	"sync"
	"time"

	apperrors "maternal-care-backend/internal/errors"

	"github.com/google/uuid"
)

type recordKey struct {
	subjectID   uuid.UUID
	milestoneID string
}

// Ledger is the in-memory store of completion records. It is schedule-
// agnostic: keys are not validated against any template, that is the
// caller's job. All methods are safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	records map[recordKey]*CompletionRecord
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{records: make(map[recordKey]*CompletionRecord)}
}

// Get returns copies of all records for a subject, ordered by milestone id
// for stable output
func (l *Ledger) Get(subjectID uuid.UUID) []CompletionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []CompletionRecord
	for key, rec := range l.records {
		if key.subjectID == subjectID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MilestoneID < out[j].MilestoneID })
	return out
}

// Record returns a copy of the record for the key, if present
func (l *Ledger) Record(subjectID uuid.UUID, milestoneID string) (CompletionRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.records[recordKey{subjectID, milestoneID}]
	if !ok {
		return CompletionRecord{}, false
	}
	return *rec, true
}

// UpsertCompletion creates or overwrites the record for the key as an
// optimistic local write: sync status becomes pending and the local revision
// is incremented. It never blocks on network state.
func (l *Ledger) UpsertCompletion(subjectID uuid.UUID, milestoneID string, completedAt time.Time, details CompletionDetails) CompletionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	key := recordKey{subjectID, milestoneID}
	rec, ok := l.records[key]
	if !ok {
		rec = &CompletionRecord{
			SubjectID:   subjectID,
			MilestoneID: milestoneID,
			CreatedAt:   now,
		}
		l.records[key] = rec
	}
	rec.CompletedAt = completedAt
	rec.Details = details
	rec.SyncStatus = SyncStatusPending
	rec.LocalRevision++
	rec.UpdatedAt = now
	return *rec
}

// MarkSynced transitions a pending record to synced, but only if no newer
// local mutation happened since the sync attempt snapshotted the record:
// the revision captured at sync start must still be current. A stale result
// is discarded and the record stays pending (last local write wins).
// Returns true if the transition was applied.
func (l *Ledger) MarkSynced(subjectID uuid.UUID, milestoneID string, snapshotRevision, serverRevision int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[recordKey{subjectID, milestoneID}]
	if !ok || rec.SyncStatus != SyncStatusPending || rec.LocalRevision != snapshotRevision {
		return false
	}
	rec.SyncStatus = SyncStatusSynced
	rec.ServerRevision = serverRevision
	rec.UpdatedAt = time.Now().UTC()
	return true
}

// MarkFailed transitions a pending record to failed under the same revision
// guard as MarkSynced: a late failure for a superseded push attempt must not
// flag a newer pending write. Returns true if the transition was applied.
func (l *Ledger) MarkFailed(subjectID uuid.UUID, milestoneID string, snapshotRevision int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[recordKey{subjectID, milestoneID}]
	if !ok || rec.SyncStatus != SyncStatusPending || rec.LocalRevision != snapshotRevision {
		return false
	}
	rec.SyncStatus = SyncStatusFailed
	rec.UpdatedAt = time.Now().UTC()
	return true
}

// Retry resets a failed record to pending. Failed records are never retried
// automatically; surprising background network activity is worse than a
// visible "not saved" indicator.
func (l *Ledger) Retry(subjectID uuid.UUID, milestoneID string) (CompletionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[recordKey{subjectID, milestoneID}]
	if !ok {
		return CompletionRecord{}, apperrors.ErrCompletionRecordNotFound
	}
	if rec.SyncStatus != SyncStatusFailed {
		return CompletionRecord{}, apperrors.ErrRecordNotFailed
	}
	rec.SyncStatus = SyncStatusPending
	rec.LocalRevision++
	rec.UpdatedAt = time.Now().UTC()
	return *rec, nil
}

// Remove deletes the record for the key regardless of sync status. Used only
// when explicitly reverting a mistaken completion. Returns true if a record
// was removed.
func (l *Ledger) Remove(subjectID uuid.UUID, milestoneID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := recordKey{subjectID, milestoneID}
	if _, ok := l.records[key]; !ok {
		return false
	}
	delete(l.records, key)
	return true
}

// PendingFor returns copies of the subject's pending records, ordered by
// milestone id. The copies carry the local revisions a push attempt must
// hand back to MarkSynced/MarkFailed.
func (l *Ledger) PendingFor(subjectID uuid.UUID) []CompletionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []CompletionRecord
	for key, rec := range l.records {
		if key.subjectID == subjectID && rec.SyncStatus == SyncStatusPending {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MilestoneID < out[j].MilestoneID })
	return out
}

// UnsyncedFor returns copies of the subject's pending and failed records
func (l *Ledger) UnsyncedFor(subjectID uuid.UUID) []CompletionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []CompletionRecord
	for key, rec := range l.records {
		if key.subjectID == subjectID && rec.Unsynced() {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MilestoneID < out[j].MilestoneID })
	return out
}

// ApplyServerRecords merges server-authoritative records into the ledger,
// used to seed it on first load. The server wins only for keys with no local
// pending or failed record; a locally unsynced write is never overwritten by
// a stale pull. Returns the number of records applied.
func (l *Ledger) ApplyServerRecords(subjectID uuid.UUID, records []CompletionRecord) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	applied := 0
	now := time.Now().UTC()
	for _, server := range records {
		if server.SubjectID != subjectID {
			continue
		}
		key := recordKey{server.SubjectID, server.MilestoneID}
		if existing, ok := l.records[key]; ok {
			if existing.Unsynced() {
				continue
			}
			server.LocalRevision = existing.LocalRevision
			server.CreatedAt = existing.CreatedAt
		}
		server.SyncStatus = SyncStatusSynced
		server.UpdatedAt = now
		if server.CreatedAt.IsZero() {
			server.CreatedAt = now
		}
		rec := server
		l.records[key] = &rec
		applied++
	}
	return applied
}

// Restore loads previously persisted records verbatim, preserving sync
// status and revisions. Used to warm the ledger from durable storage at
// startup, before any mutation.
func (l *Ledger) Restore(records []CompletionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range records {
		rec := r
		l.records[recordKey{r.SubjectID, r.MilestoneID}] = &rec
	}
}

// Len returns the total number of records in the ledger
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
