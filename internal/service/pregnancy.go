package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"maternal-care-backend/internal/database/models"
	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PregnancyService handles business logic for pregnancies
type PregnancyService struct {
	repo      repository.PregnancyRepositoryInterface
	validator *validator.Validate
}

// Ensure PregnancyService implements PregnancyServiceInterface
var _ PregnancyServiceInterface = (*PregnancyService)(nil)

// NewPregnancyService creates a new pregnancy service
func NewPregnancyService(repo repository.PregnancyRepositoryInterface, validator *validator.Validate) *PregnancyService {
	return &PregnancyService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePregnancyRequest represents the request to register a pregnancy
type CreatePregnancyRequest struct {
	MotherName           string          `json:"mother_name" validate:"required,min=1,max=120"`
	MotherPhone          string          `json:"mother_phone,omitempty" validate:"max=30"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date" validate:"required,datetime=2006-01-02"`
	Gravida              int             `json:"gravida,omitempty" validate:"min=0"`
	Para                 int             `json:"para,omitempty" validate:"min=0"`
	HighRisk             bool            `json:"high_risk,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	Metadata             json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdatePregnancyRequest represents the request to update a pregnancy
type UpdatePregnancyRequest struct {
	MotherName           string                  `json:"mother_name" validate:"required,min=1,max=120"`
	MotherPhone          string                  `json:"mother_phone,omitempty" validate:"max=30"`
	ExpectedDeliveryDate string                  `json:"expected_delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status               *models.PregnancyStatus `json:"status,omitempty"`
	Gravida              *int                    `json:"gravida,omitempty"`
	Para                 *int                    `json:"para,omitempty"`
	HighRisk             *bool                   `json:"high_risk,omitempty"`
	Notes                string                  `json:"notes,omitempty"`
	Metadata             json.RawMessage         `json:"metadata,omitempty" swaggertype:"object"`
}

// PregnancyResponse represents the response for pregnancy operations
type PregnancyResponse struct {
	ID                   uuid.UUID              `json:"id"`
	MotherName           string                 `json:"mother_name"`
	MotherPhone          string                 `json:"mother_phone,omitempty"`
	ExpectedDeliveryDate string                 `json:"expected_delivery_date"`
	GestationalWeek      int                    `json:"gestational_week"`
	Status               models.PregnancyStatus `json:"status"`
	Gravida              int                    `json:"gravida"`
	Para                 int                    `json:"para"`
	HighRisk             bool                   `json:"high_risk"`
	Notes                string                 `json:"notes,omitempty"`
	Metadata             json.RawMessage        `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt            string                 `json:"created_at"`
	UpdatedAt            string                 `json:"updated_at"`
}

// PregnancyListResponse represents a paginated list of pregnancies
type PregnancyListResponse struct {
	Pregnancies []PregnancyResponse `json:"pregnancies"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// Create registers a new pregnancy
func (s *PregnancyService) Create(req *CreatePregnancyRequest) (*PregnancyResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	edd, err := time.Parse(dateLayout, req.ExpectedDeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid expected delivery date: %w", err)
	}

	pregnancy := &models.Pregnancy{
		MotherName:           req.MotherName,
		MotherPhone:          req.MotherPhone,
		ExpectedDeliveryDate: edd,
		Status:               models.PregnancyStatusActive,
		Gravida:              req.Gravida,
		Para:                 req.Para,
		HighRisk:             req.HighRisk,
		Notes:                req.Notes,
		Metadata:             req.Metadata,
	}

	if err := s.repo.Create(pregnancy); err != nil {
		return nil, fmt.Errorf("failed to create pregnancy: %w", err)
	}

	return s.toResponse(pregnancy), nil
}

// GetByID retrieves a pregnancy by ID
func (s *PregnancyService) GetByID(id uuid.UUID) (*PregnancyResponse, error) {
	pregnancy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPregnancyNotFound
		}
		return nil, fmt.Errorf("failed to get pregnancy: %w", err)
	}

	return s.toResponse(pregnancy), nil
}

// List retrieves pregnancies with pagination
func (s *PregnancyService) List(page, pageSize int) (*PregnancyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	pregnancies, total, err := s.repo.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pregnancies: %w", err)
	}

	return s.toListResponse(pregnancies, total, page, pageSize), nil
}

// GetByStatus retrieves pregnancies with a specific status
func (s *PregnancyService) GetByStatus(status models.PregnancyStatus, page, pageSize int) (*PregnancyListResponse, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("validation failed: invalid pregnancy status %q", status)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	pregnancies, total, err := s.repo.GetByStatus(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pregnancies by status: %w", err)
	}

	return s.toListResponse(pregnancies, total, page, pageSize), nil
}

// GetActive retrieves pregnancies still being followed, soonest delivery first
func (s *PregnancyService) GetActive(page, pageSize int) (*PregnancyListResponse, error) {
	return s.GetByStatus(models.PregnancyStatusActive, page, pageSize)
}

// Update updates a pregnancy
func (s *PregnancyService) Update(id uuid.UUID, req *UpdatePregnancyRequest) (*PregnancyResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pregnancy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPregnancyNotFound
		}
		return nil, fmt.Errorf("failed to get pregnancy: %w", err)
	}

	// Update fields
	pregnancy.MotherName = req.MotherName
	pregnancy.MotherPhone = req.MotherPhone
	pregnancy.Notes = req.Notes
	if req.ExpectedDeliveryDate != "" {
		edd, err := time.Parse(dateLayout, req.ExpectedDeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid expected delivery date: %w", err)
		}
		pregnancy.ExpectedDeliveryDate = edd
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("validation failed: invalid pregnancy status %q", *req.Status)
		}
		pregnancy.Status = *req.Status
	}
	if req.Gravida != nil {
		pregnancy.Gravida = *req.Gravida
	}
	if req.Para != nil {
		pregnancy.Para = *req.Para
	}
	if req.HighRisk != nil {
		pregnancy.HighRisk = *req.HighRisk
	}
	if req.Metadata != nil {
		pregnancy.Metadata = req.Metadata
	}

	if err := s.repo.Update(pregnancy); err != nil {
		return nil, fmt.Errorf("failed to update pregnancy: %w", err)
	}

	return s.toResponse(pregnancy), nil
}

// Close marks a pregnancy as delivered or closed, ending schedule follow-up
func (s *PregnancyService) Close(id uuid.UUID, status models.PregnancyStatus) (*PregnancyResponse, error) {
	if status != models.PregnancyStatusDelivered && status != models.PregnancyStatusClosed {
		return nil, fmt.Errorf("validation failed: %q is not a terminal pregnancy status", status)
	}

	pregnancy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPregnancyNotFound
		}
		return nil, fmt.Errorf("failed to get pregnancy: %w", err)
	}

	if pregnancy.Status != models.PregnancyStatusActive {
		return nil, apperrors.ErrPregnancyNotActive
	}

	pregnancy.Status = status
	if err := s.repo.Update(pregnancy); err != nil {
		return nil, fmt.Errorf("failed to update pregnancy: %w", err)
	}

	return s.toResponse(pregnancy), nil
}

// Delete deletes a pregnancy record
func (s *PregnancyService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPregnancyNotFound
		}
		return fmt.Errorf("failed to get pregnancy: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete pregnancy: %w", err)
	}

	return nil
}

func (s *PregnancyService) toListResponse(pregnancies []models.Pregnancy, total int64, page, pageSize int) *PregnancyListResponse {
	responses := make([]PregnancyResponse, len(pregnancies))
	for i, pregnancy := range pregnancies {
		responses[i] = *s.toResponse(&pregnancy)
	}

	return &PregnancyListResponse{
		Pregnancies: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}
}

// toResponse converts a pregnancy model to response
func (s *PregnancyService) toResponse(pregnancy *models.Pregnancy) *PregnancyResponse {
	return &PregnancyResponse{
		ID:                   pregnancy.ID,
		MotherName:           pregnancy.MotherName,
		MotherPhone:          pregnancy.MotherPhone,
		ExpectedDeliveryDate: pregnancy.ExpectedDeliveryDate.Format(dateLayout),
		GestationalWeek:      schedule.GestationalWeek(pregnancy.ExpectedDeliveryDate, time.Now()),
		Status:               pregnancy.Status,
		Gravida:              pregnancy.Gravida,
		Para:                 pregnancy.Para,
		HighRisk:             pregnancy.HighRisk,
		Notes:                pregnancy.Notes,
		Metadata:             pregnancy.Metadata,
		CreatedAt:            pregnancy.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            pregnancy.UpdatedAt.Format(time.RFC3339),
	}
}
