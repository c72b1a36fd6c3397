package repository

import (
	"encoding/json"
	"fmt"

	"maternal-care-backend/internal/database/models"
	"maternal-care-backend/internal/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompletionRecordRepository persists ledger entries. The in-memory ledger
// stays authoritative at runtime; these rows exist so a restart does not lose
// locally pending completions.
type CompletionRecordRepository struct {
	db *gorm.DB
}

// Ensure CompletionRecordRepository implements CompletionRecordRepositoryInterface
var _ CompletionRecordRepositoryInterface = (*CompletionRecordRepository)(nil)

// NewCompletionRecordRepository creates a new completion record repository
func NewCompletionRecordRepository(db *gorm.DB) *CompletionRecordRepository {
	return &CompletionRecordRepository{db: db}
}

// Save upserts the row for the record's (subject_id, milestone_id) key
func (r *CompletionRecordRepository) Save(record ledger.CompletionRecord, domain string) error {
	row, err := toRow(record, domain)
	if err != nil {
		return err
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "subject_id"}, {Name: "milestone_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed_at", "details", "sync_status", "local_revision", "server_revision", "updated_at",
		}),
	}).Create(row).Error
}

// GetBySubjectID retrieves all rows for a subject
func (r *CompletionRecordRepository) GetBySubjectID(subjectID uuid.UUID) ([]models.CompletionRecord, error) {
	var rows []models.CompletionRecord
	err := r.db.Where("subject_id = ?", subjectID).Order("milestone_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByKey removes the row for a (subject, milestone) key
func (r *CompletionRecordRepository) DeleteByKey(subjectID uuid.UUID, milestoneID string) error {
	return r.db.Delete(&models.CompletionRecord{}, "subject_id = ? AND milestone_id = ?", subjectID, milestoneID).Error
}

// LoadLedgerRecords returns every persisted row as a ledger record, used to
// warm the in-memory ledger at startup
func (r *CompletionRecordRepository) LoadLedgerRecords() ([]ledger.CompletionRecord, error) {
	var rows []models.CompletionRecord
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]ledger.CompletionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toLedgerRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toRow(record ledger.CompletionRecord, domain string) (*models.CompletionRecord, error) {
	details, err := json.Marshal(record.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal completion details: %w", err)
	}
	return &models.CompletionRecord{
		SubjectID:      record.SubjectID,
		MilestoneID:    record.MilestoneID,
		Domain:         domain,
		CompletedAt:    record.CompletedAt,
		Details:        details,
		SyncStatus:     string(record.SyncStatus),
		LocalRevision:  record.LocalRevision,
		ServerRevision: record.ServerRevision,
	}, nil
}

func toLedgerRecord(row models.CompletionRecord) (ledger.CompletionRecord, error) {
	rec := ledger.CompletionRecord{
		SubjectID:      row.SubjectID,
		MilestoneID:    row.MilestoneID,
		CompletedAt:    row.CompletedAt,
		SyncStatus:     ledger.SyncStatus(row.SyncStatus),
		LocalRevision:  row.LocalRevision,
		ServerRevision: row.ServerRevision,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if len(row.Details) > 0 {
		if err := json.Unmarshal(row.Details, &rec.Details); err != nil {
			return ledger.CompletionRecord{}, fmt.Errorf("unmarshal completion details for %s/%s: %w", row.SubjectID, row.MilestoneID, err)
		}
	}
	return rec, nil
}
