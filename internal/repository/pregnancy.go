package repository

import (
	"maternal-care-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PregnancyRepository handles database operations for pregnancies
type PregnancyRepository struct {
	db *gorm.DB
}

// Ensure PregnancyRepository implements PregnancyRepositoryInterface
var _ PregnancyRepositoryInterface = (*PregnancyRepository)(nil)

// NewPregnancyRepository creates a new pregnancy repository
func NewPregnancyRepository(db *gorm.DB) *PregnancyRepository {
	return &PregnancyRepository{db: db}
}

// Create creates a new pregnancy
func (r *PregnancyRepository) Create(pregnancy *models.Pregnancy) error {
	return r.db.Create(pregnancy).Error
}

// GetByID retrieves a pregnancy by ID
func (r *PregnancyRepository) GetByID(id uuid.UUID) (*models.Pregnancy, error) {
	var pregnancy models.Pregnancy
	err := r.db.First(&pregnancy, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pregnancy, nil
}

// List retrieves pregnancies with pagination, newest first
func (r *PregnancyRepository) List(limit, offset int) ([]models.Pregnancy, int64, error) {
	var pregnancies []models.Pregnancy
	var total int64

	if err := r.db.Model(&models.Pregnancy{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&pregnancies).Error
	if err != nil {
		return nil, 0, err
	}

	return pregnancies, total, nil
}

// GetByStatus retrieves pregnancies with a specific status
func (r *PregnancyRepository) GetByStatus(status models.PregnancyStatus, limit, offset int) ([]models.Pregnancy, int64, error) {
	var pregnancies []models.Pregnancy
	var total int64

	query := r.db.Model(&models.Pregnancy{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("expected_delivery_date ASC").Limit(limit).Offset(offset).Find(&pregnancies).Error
	if err != nil {
		return nil, 0, err
	}

	return pregnancies, total, nil
}

// Update updates a pregnancy
func (r *PregnancyRepository) Update(pregnancy *models.Pregnancy) error {
	return r.db.Save(pregnancy).Error
}

// Delete deletes a pregnancy by ID
func (r *PregnancyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Pregnancy{}, "id = ?", id).Error
}
