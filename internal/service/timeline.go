package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimelineService evaluates care schedules against the completion ledger
type TimelineService struct {
	childRepo     repository.ChildRepositoryInterface
	pregnancyRepo repository.PregnancyRepositoryInterface
	registry      *schedule.Registry
	ledger        *ledger.Ledger
	grace         schedule.GracePolicy
	now           func() time.Time
}

// Ensure TimelineService implements TimelineServiceInterface
var _ TimelineServiceInterface = (*TimelineService)(nil)

// NewTimelineService creates a new timeline service
func NewTimelineService(childRepo repository.ChildRepositoryInterface, pregnancyRepo repository.PregnancyRepositoryInterface, registry *schedule.Registry, l *ledger.Ledger, grace schedule.GracePolicy) *TimelineService {
	return &TimelineService{
		childRepo:     childRepo,
		pregnancyRepo: pregnancyRepo,
		registry:      registry,
		ledger:        l,
		grace:         grace,
		now:           time.Now,
	}
}

// TimelineResponse represents an evaluated schedule for one subject
type TimelineResponse struct {
	SubjectID     uuid.UUID             `json:"subject_id"`
	Domain        schedule.Domain       `json:"domain"`
	ReferenceDate string                `json:"reference_date"`
	EvaluatedAt   string                `json:"evaluated_at"`
	Timeline      schedule.TimelineView `json:"timeline"`
}

// ChildImmunizations evaluates the vaccination schedule for a child,
// anchored on the child's date of birth
func (s *TimelineService) ChildImmunizations(childID uuid.UUID) (*TimelineResponse, error) {
	child, err := s.childRepo.GetByID(childID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	return s.evaluate(childID, schedule.DomainVaccination, child.DateOfBirth)
}

// PregnancyCheckups evaluates the prenatal checkup schedule for a pregnancy,
// anchored on the expected delivery date
func (s *TimelineService) PregnancyCheckups(pregnancyID uuid.UUID) (*TimelineResponse, error) {
	return s.pregnancyTimeline(pregnancyID, schedule.DomainPrenatalCheckup)
}

// PregnancyMilestones evaluates the pregnancy landmark schedule for a
// pregnancy, anchored on the expected delivery date
func (s *TimelineService) PregnancyMilestones(pregnancyID uuid.UUID) (*TimelineResponse, error) {
	return s.pregnancyTimeline(pregnancyID, schedule.DomainPregnancyMilestone)
}

func (s *TimelineService) pregnancyTimeline(pregnancyID uuid.UUID, domain schedule.Domain) (*TimelineResponse, error) {
	pregnancy, err := s.pregnancyRepo.GetByID(pregnancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPregnancyNotFound
		}
		return nil, fmt.Errorf("failed to get pregnancy: %w", err)
	}

	return s.evaluate(pregnancyID, domain, pregnancy.ExpectedDeliveryDate)
}

func (s *TimelineService) evaluate(subjectID uuid.UUID, domain schedule.Domain, referenceDate time.Time) (*TimelineResponse, error) {
	tmpl, err := s.registry.Get(domain)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s schedule: %w", domain, err)
	}

	today := s.now()
	view := schedule.Evaluate(tmpl, referenceDate, today, s.ledger.Get(subjectID), s.grace)

	return &TimelineResponse{
		SubjectID:     subjectID,
		Domain:        domain,
		ReferenceDate: referenceDate.Format(dateLayout),
		EvaluatedAt:   today.UTC().Format(time.RFC3339),
		Timeline:      view,
	}, nil
}
