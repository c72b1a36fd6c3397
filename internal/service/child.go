package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"maternal-care-backend/internal/database/models"
	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dateLayout is the wire format for date-only fields
const dateLayout = "2006-01-02"

// ChildService handles business logic for children
type ChildService struct {
	repo      repository.ChildRepositoryInterface
	validator *validator.Validate
}

// Ensure ChildService implements ChildServiceInterface
var _ ChildServiceInterface = (*ChildService)(nil)

// NewChildService creates a new child service
func NewChildService(repo repository.ChildRepositoryInterface, validator *validator.Validate) *ChildService {
	return &ChildService{
		repo:      repo,
		validator: validator,
	}
}

// CreateChildRequest represents the request to register a child
type CreateChildRequest struct {
	FirstName           string          `json:"first_name" validate:"required,min=1,max=80"`
	LastName            string          `json:"last_name" validate:"required,min=1,max=80"`
	Sex                 models.Sex      `json:"sex" validate:"required"`
	DateOfBirth         string          `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	MedicalRecordNumber string          `json:"medical_record_number" validate:"required,max=40"`
	GuardianName        string          `json:"guardian_name,omitempty" validate:"max=120"`
	GuardianPhone       string          `json:"guardian_phone,omitempty" validate:"max=30"`
	BirthWeightGrams    int             `json:"birth_weight_grams,omitempty" validate:"min=0"`
	Metadata            json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdateChildRequest represents the request to update a child's record.
// Date of birth and the medical record number are fixed at registration.
type UpdateChildRequest struct {
	FirstName        string          `json:"first_name" validate:"required,min=1,max=80"`
	LastName         string          `json:"last_name" validate:"required,min=1,max=80"`
	GuardianName     string          `json:"guardian_name,omitempty" validate:"max=120"`
	GuardianPhone    string          `json:"guardian_phone,omitempty" validate:"max=30"`
	BirthWeightGrams *int            `json:"birth_weight_grams,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// ChildResponse represents the response for child operations
type ChildResponse struct {
	ID                  uuid.UUID       `json:"id"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Sex                 models.Sex      `json:"sex"`
	DateOfBirth         string          `json:"date_of_birth"`
	AgeInMonths         int             `json:"age_in_months"`
	MedicalRecordNumber string          `json:"medical_record_number"`
	GuardianName        string          `json:"guardian_name,omitempty"`
	GuardianPhone       string          `json:"guardian_phone,omitempty"`
	BirthWeightGrams    int             `json:"birth_weight_grams,omitempty"`
	Metadata            json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}

// ChildListResponse represents a paginated list of children
type ChildListResponse struct {
	Children []ChildResponse `json:"children"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create registers a new child
func (s *ChildService) Create(req *CreateChildRequest) (*ChildResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Sex.IsValid() {
		return nil, fmt.Errorf("validation failed: invalid sex %q", req.Sex)
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid date of birth: %w", err)
	}
	if dob.After(time.Now()) {
		return nil, fmt.Errorf("validation failed: date of birth cannot be in the future")
	}

	// Check for an existing record with the same medical record number
	existing, err := s.repo.GetByMedicalRecordNumber(req.MedicalRecordNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing child: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrChildExists
	}

	child := &models.Child{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Sex:                 req.Sex,
		DateOfBirth:         dob,
		MedicalRecordNumber: req.MedicalRecordNumber,
		GuardianName:        req.GuardianName,
		GuardianPhone:       req.GuardianPhone,
		BirthWeightGrams:    req.BirthWeightGrams,
		Metadata:            req.Metadata,
	}

	if err := s.repo.Create(child); err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}

	return s.toResponse(child), nil
}

// GetByID retrieves a child by ID
func (s *ChildService) GetByID(id uuid.UUID) (*ChildResponse, error) {
	child, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	return s.toResponse(child), nil
}

// GetByMedicalRecordNumber retrieves a child by medical record number
func (s *ChildService) GetByMedicalRecordNumber(mrn string) (*ChildResponse, error) {
	child, err := s.repo.GetByMedicalRecordNumber(mrn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	return s.toResponse(child), nil
}

// List retrieves children with pagination
func (s *ChildService) List(page, pageSize int) (*ChildListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	children, total, err := s.repo.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	responses := make([]ChildResponse, len(children))
	for i, child := range children {
		responses[i] = *s.toResponse(&child)
	}

	return &ChildListResponse{
		Children: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetBornAfter retrieves children born on or after the given date
func (s *ChildService) GetBornAfter(date string, page, pageSize int) (*ChildListResponse, error) {
	after, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid date: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	children, total, err := s.repo.GetBornAfter(after, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list children by birth date: %w", err)
	}

	responses := make([]ChildResponse, len(children))
	for i, child := range children {
		responses[i] = *s.toResponse(&child)
	}

	return &ChildListResponse{
		Children: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a child's record
func (s *ChildService) Update(id uuid.UUID, req *UpdateChildRequest) (*ChildResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	child, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	// Update fields
	child.FirstName = req.FirstName
	child.LastName = req.LastName
	child.GuardianName = req.GuardianName
	child.GuardianPhone = req.GuardianPhone
	if req.BirthWeightGrams != nil {
		child.BirthWeightGrams = *req.BirthWeightGrams
	}
	if req.Metadata != nil {
		child.Metadata = req.Metadata
	}

	if err := s.repo.Update(child); err != nil {
		return nil, fmt.Errorf("failed to update child: %w", err)
	}

	return s.toResponse(child), nil
}

// Delete deletes a child's record
func (s *ChildService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChildNotFound
		}
		return fmt.Errorf("failed to get child: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete child: %w", err)
	}

	return nil
}

// toResponse converts a child model to response
func (s *ChildService) toResponse(child *models.Child) *ChildResponse {
	return &ChildResponse{
		ID:                  child.ID,
		FirstName:           child.FirstName,
		LastName:            child.LastName,
		Sex:                 child.Sex,
		DateOfBirth:         child.DateOfBirth.Format(dateLayout),
		AgeInMonths:         ageInMonths(child.DateOfBirth, time.Now()),
		MedicalRecordNumber: child.MedicalRecordNumber,
		GuardianName:        child.GuardianName,
		GuardianPhone:       child.GuardianPhone,
		BirthWeightGrams:    child.BirthWeightGrams,
		Metadata:            child.Metadata,
		CreatedAt:           child.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           child.UpdatedAt.Format(time.RFC3339),
	}
}

// ageInMonths counts whole calendar months between birth and today
func ageInMonths(dob, today time.Time) int {
	if today.Before(dob) {
		return 0
	}
	months := (today.Year()-dob.Year())*12 + int(today.Month()) - int(dob.Month())
	if today.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
