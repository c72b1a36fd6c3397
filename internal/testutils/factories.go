package testutils

import (
	"time"

	"maternal-care-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Child            *ChildFactory
	Pregnancy        *PregnancyFactory
	CompletionRecord *CompletionRecordFactory
}

// NewFactorySet creates a FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Child:            NewChildFactory(),
		Pregnancy:        NewPregnancyFactory(),
		CompletionRecord: NewCompletionRecordFactory(),
	}
}

// ChildFactory provides methods to create test Child data
type ChildFactory struct{}

// NewChildFactory creates a new ChildFactory
func NewChildFactory() *ChildFactory {
	return &ChildFactory{}
}

// Create creates a test Child with default values
func (f *ChildFactory) Create() *models.Child {
	return &models.Child{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:           "Amina",
		LastName:            "Okoth",
		Sex:                 models.SexFemale,
		DateOfBirth:         time.Now().AddDate(0, -3, 0).Truncate(24 * time.Hour),
		MedicalRecordNumber: "MRN-" + uuid.NewString()[:8],
		GuardianName:        "Grace Okoth",
		GuardianPhone:       "+254700000001",
		BirthWeightGrams:    3200,
	}
}

// WithDateOfBirth sets a custom date of birth
func (f *ChildFactory) WithDateOfBirth(dob time.Time) *models.Child {
	child := f.Create()
	child.DateOfBirth = dob
	return child
}

// WithMedicalRecordNumber sets a custom medical record number
func (f *ChildFactory) WithMedicalRecordNumber(mrn string) *models.Child {
	child := f.Create()
	child.MedicalRecordNumber = mrn
	return child
}

// PregnancyFactory provides methods to create test Pregnancy data
type PregnancyFactory struct{}

// NewPregnancyFactory creates a new PregnancyFactory
func NewPregnancyFactory() *PregnancyFactory {
	return &PregnancyFactory{}
}

// Create creates a test Pregnancy with default values
func (f *PregnancyFactory) Create() *models.Pregnancy {
	return &models.Pregnancy{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MotherName:           "Wanjiru Kamau",
		MotherPhone:          "+254700000002",
		ExpectedDeliveryDate: time.Now().AddDate(0, 0, 20*7).Truncate(24 * time.Hour),
		Status:               models.PregnancyStatusActive,
		Gravida:              2,
		Para:                 1,
	}
}

// WithExpectedDeliveryDate sets a custom expected delivery date
func (f *PregnancyFactory) WithExpectedDeliveryDate(edd time.Time) *models.Pregnancy {
	pregnancy := f.Create()
	pregnancy.ExpectedDeliveryDate = edd
	return pregnancy
}

// WithStatus sets a custom status
func (f *PregnancyFactory) WithStatus(status models.PregnancyStatus) *models.Pregnancy {
	pregnancy := f.Create()
	pregnancy.Status = status
	return pregnancy
}

// CompletionRecordFactory provides methods to create test CompletionRecord rows
type CompletionRecordFactory struct{}

// NewCompletionRecordFactory creates a new CompletionRecordFactory
func NewCompletionRecordFactory() *CompletionRecordFactory {
	return &CompletionRecordFactory{}
}

// Create creates a test CompletionRecord with default values
func (f *CompletionRecordFactory) Create(subjectID uuid.UUID, milestoneID string) *models.CompletionRecord {
	return &models.CompletionRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SubjectID:     subjectID,
		MilestoneID:   milestoneID,
		Domain:        "vaccination",
		CompletedAt:   time.Now().AddDate(0, 0, -1),
		SyncStatus:    "pending",
		LocalRevision: 1,
	}
}
