package repository

import (
	"time"

	"maternal-care-backend/internal/database/models"
	"maternal-care-backend/internal/ledger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ChildRepositoryInterface defines the interface for child repository operations
type ChildRepositoryInterface interface {
	Create(child *models.Child) error
	GetByID(id uuid.UUID) (*models.Child, error)
	GetByMedicalRecordNumber(mrn string) (*models.Child, error)
	List(limit, offset int) ([]models.Child, int64, error)
	GetBornAfter(date time.Time, limit, offset int) ([]models.Child, int64, error)
	Update(child *models.Child) error
	Delete(id uuid.UUID) error
}

// PregnancyRepositoryInterface defines the interface for pregnancy repository operations
type PregnancyRepositoryInterface interface {
	Create(pregnancy *models.Pregnancy) error
	GetByID(id uuid.UUID) (*models.Pregnancy, error)
	List(limit, offset int) ([]models.Pregnancy, int64, error)
	GetByStatus(status models.PregnancyStatus, limit, offset int) ([]models.Pregnancy, int64, error)
	Update(pregnancy *models.Pregnancy) error
	Delete(id uuid.UUID) error
}

// CompletionRecordRepositoryInterface defines the interface for completion record persistence
type CompletionRecordRepositoryInterface interface {
	Save(record ledger.CompletionRecord, domain string) error
	GetBySubjectID(subjectID uuid.UUID) ([]models.CompletionRecord, error)
	DeleteByKey(subjectID uuid.UUID, milestoneID string) error
	LoadLedgerRecords() ([]ledger.CompletionRecord, error)
}
