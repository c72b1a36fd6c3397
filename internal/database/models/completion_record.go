package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CompletionRecord is the durable row behind one ledger entry: which
// milestone was completed for which subject, plus the sync bookkeeping. The
// (subject_id, milestone_id) pair is the ledger's key-value contract; the
// evaluator never reads these rows directly.
type CompletionRecord struct {
	BaseModel
	SubjectID      uuid.UUID       `json:"subject_id" gorm:"type:uuid;not null;uniqueIndex:idx_completion_key" validate:"required"`
	MilestoneID    string          `json:"milestone_id" gorm:"size:80;not null;uniqueIndex:idx_completion_key" validate:"required,max=80"`
	Domain         string          `json:"domain" gorm:"type:varchar(30);not null;index" validate:"required"`
	CompletedAt    time.Time       `json:"completed_at" gorm:"not null"`
	Details        json.RawMessage `json:"details" gorm:"type:jsonb"`
	SyncStatus     string          `json:"sync_status" gorm:"type:varchar(20);not null;default:'pending'"`
	LocalRevision  int64           `json:"local_revision" gorm:"not null;default:0"`
	ServerRevision int64           `json:"server_revision" gorm:"not null;default:0"`
}

// TableName returns the table name for CompletionRecord
func (CompletionRecord) TableName() string {
	return "completion_records"
}
