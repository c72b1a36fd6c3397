package repository

import (
	"time"

	"maternal-care-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChildRepository handles database operations for children
type ChildRepository struct {
	db *gorm.DB
}

// Ensure ChildRepository implements ChildRepositoryInterface
var _ ChildRepositoryInterface = (*ChildRepository)(nil)

// NewChildRepository creates a new child repository
func NewChildRepository(db *gorm.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

// Create creates a new child
func (r *ChildRepository) Create(child *models.Child) error {
	return r.db.Create(child).Error
}

// GetByID retrieves a child by ID
func (r *ChildRepository) GetByID(id uuid.UUID) (*models.Child, error) {
	var child models.Child
	err := r.db.First(&child, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// GetByMedicalRecordNumber retrieves a child by medical record number
func (r *ChildRepository) GetByMedicalRecordNumber(mrn string) (*models.Child, error) {
	var child models.Child
	err := r.db.First(&child, "medical_record_number = ?", mrn).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// List retrieves children with pagination, newest first
func (r *ChildRepository) List(limit, offset int) ([]models.Child, int64, error) {
	var children []models.Child
	var total int64

	if err := r.db.Model(&models.Child{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&children).Error
	if err != nil {
		return nil, 0, err
	}

	return children, total, nil
}

// GetBornAfter retrieves children born on or after the given date
func (r *ChildRepository) GetBornAfter(date time.Time, limit, offset int) ([]models.Child, int64, error) {
	var children []models.Child
	var total int64

	query := r.db.Model(&models.Child{}).Where("date_of_birth >= ?", date)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date_of_birth DESC").Limit(limit).Offset(offset).Find(&children).Error
	if err != nil {
		return nil, 0, err
	}

	return children, total, nil
}

// Update updates a child
func (r *ChildRepository) Update(child *models.Child) error {
	return r.db.Save(child).Error
}

// Delete deletes a child by ID
func (r *ChildRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Child{}, "id = ?", id).Error
}
