package ledger

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus tracks whether a locally recorded completion has been confirmed
// by the backend of record
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

// IsValid checks if the SyncStatus is valid
func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSynced, SyncStatusFailed:
		return true
	}
	return false
}

// VaccinationDetails carries dose-specific data captured when a vaccine is
// administered
type VaccinationDetails struct {
	BatchNumber    string `json:"batch_number,omitempty"`
	AdministeredBy string `json:"administered_by,omitempty"`
	Site           string `json:"site,omitempty"`
}

// CheckupDetails carries the measurements taken at a prenatal visit
type CheckupDetails struct {
	WeightKg       float64 `json:"weight_kg,omitempty"`
	BloodPressure  string  `json:"blood_pressure,omitempty"`
	FundalHeightCm float64 `json:"fundal_height_cm,omitempty"`
	AttendedBy     string  `json:"attended_by,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// MilestoneDetails carries free-form notes for a pregnancy landmark
type MilestoneDetails struct {
	Notes string `json:"notes,omitempty"`
}

// CompletionDetails is a per-domain tagged union; exactly one branch is set
// depending on which schedule the milestone belongs to. The ledger and the
// evaluator treat it as opaque.
type CompletionDetails struct {
	Vaccination *VaccinationDetails `json:"vaccination,omitempty"`
	Checkup     *CheckupDetails     `json:"checkup,omitempty"`
	Milestone   *MilestoneDetails   `json:"milestone,omitempty"`
}

// CompletionRecord is one ledger entry: a milestone completed for a subject,
// written locally first and reconciled with the backend later.
//
// LocalRevision increases on every local mutation of the key. A sync result
// carries the revision it was computed from, so a result arriving after a
// newer local write is detected as stale and discarded.
type CompletionRecord struct {
	SubjectID      uuid.UUID         `json:"subject_id"`
	MilestoneID    string            `json:"milestone_id"`
	CompletedAt    time.Time         `json:"completed_at"`
	Details        CompletionDetails `json:"details"`
	SyncStatus     SyncStatus        `json:"sync_status"`
	LocalRevision  int64             `json:"local_revision"`
	ServerRevision int64             `json:"server_revision,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Completed reports whether the record marks its milestone as completed
func (r *CompletionRecord) Completed() bool {
	return !r.CompletedAt.IsZero()
}

// Unsynced reports whether the record still carries a local state the backend
// has not confirmed (pending or failed)
func (r *CompletionRecord) Unsynced() bool {
	return r.SyncStatus == SyncStatusPending || r.SyncStatus == SyncStatusFailed
}
