package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maternal-care-backend/internal/database/models"
	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/logger"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionService records, reverts and resyncs milestone completions. Every
// mutation lands in the in-memory ledger first; the durable rows mirror it so
// a restart does not lose local state.
type CompletionService struct {
	ledger        *ledger.Ledger
	registry      *schedule.Registry
	childRepo     repository.ChildRepositoryInterface
	pregnancyRepo repository.PregnancyRepositoryInterface
	recordRepo    repository.CompletionRecordRepositoryInterface
	syncer        SubjectSyncer
	validator     *validator.Validate
	log           *logger.Logger
	now           func() time.Time
}

// Ensure CompletionService implements CompletionServiceInterface
var _ CompletionServiceInterface = (*CompletionService)(nil)

// NewCompletionService creates a new completion service
func NewCompletionService(
	l *ledger.Ledger,
	registry *schedule.Registry,
	childRepo repository.ChildRepositoryInterface,
	pregnancyRepo repository.PregnancyRepositoryInterface,
	recordRepo repository.CompletionRecordRepositoryInterface,
	syncer SubjectSyncer,
	validator *validator.Validate,
	log *logger.Logger,
) *CompletionService {
	if log == nil {
		log = logger.New()
	}
	return &CompletionService{
		ledger:        l,
		registry:      registry,
		childRepo:     childRepo,
		pregnancyRepo: pregnancyRepo,
		recordRepo:    recordRepo,
		syncer:        syncer,
		validator:     validator,
		log:           log,
		now:           time.Now,
	}
}

// MarkCompletionRequest represents the request to mark a milestone completed
type MarkCompletionRequest struct {
	CompletedAt string                     `json:"completed_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Vaccination *ledger.VaccinationDetails `json:"vaccination,omitempty"`
	Checkup     *ledger.CheckupDetails     `json:"checkup,omitempty"`
	Milestone   *ledger.MilestoneDetails   `json:"milestone,omitempty"`
}

// CompletionResponse represents one ledger entry
type CompletionResponse struct {
	SubjectID      uuid.UUID                `json:"subject_id"`
	MilestoneID    string                   `json:"milestone_id"`
	CompletedAt    string                   `json:"completed_at"`
	Details        ledger.CompletionDetails `json:"details"`
	SyncStatus     ledger.SyncStatus        `json:"sync_status"`
	LocalRevision  int64                    `json:"local_revision"`
	ServerRevision int64                    `json:"server_revision,omitempty"`
	UpdatedAt      string                   `json:"updated_at"`
}

// CompletionListResponse represents all ledger entries for one subject
type CompletionListResponse struct {
	SubjectID   uuid.UUID            `json:"subject_id"`
	Completions []CompletionResponse `json:"completions"`
	Total       int                  `json:"total"`
}

// SyncResponse summarizes one reconciliation run for a subject
type SyncResponse struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Attempted int       `json:"attempted"`
	Synced    int       `json:"synced"`
	Failed    int       `json:"failed"`
	Discarded int       `json:"discarded"`
}

// Mark records a milestone as completed for a subject. The write is local
// first: the entry starts out pending and is pushed by the next sync.
func (s *CompletionService) Mark(domain schedule.Domain, subjectID uuid.UUID, milestoneID string, req *MarkCompletionRequest) (*CompletionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tmpl, err := s.template(domain)
	if err != nil {
		return nil, err
	}
	if _, ok := tmpl.Milestone(milestoneID); !ok {
		return nil, apperrors.ErrMilestoneNotFound
	}

	if err := s.checkSubject(domain, subjectID); err != nil {
		return nil, err
	}

	completedAt := s.now()
	if req.CompletedAt != "" {
		completedAt, err = time.Parse(time.RFC3339, req.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("validation failed: invalid completion time: %w", err)
		}
	}
	if completedAt.After(s.now()) {
		return nil, apperrors.ErrCompletedInFuture
	}

	details, err := detailsFor(domain, req)
	if err != nil {
		return nil, err
	}

	record := s.ledger.UpsertCompletion(subjectID, milestoneID, completedAt, details)
	s.persist(record, domain)

	return toCompletionResponse(record), nil
}

// Revert removes a completion, returning the milestone to its schedule-derived
// status. Unsynced entries are discarded without ever reaching the backend.
func (s *CompletionService) Revert(domain schedule.Domain, subjectID uuid.UUID, milestoneID string) error {
	tmpl, err := s.template(domain)
	if err != nil {
		return err
	}
	if _, ok := tmpl.Milestone(milestoneID); !ok {
		return apperrors.ErrMilestoneNotFound
	}

	if !s.ledger.Remove(subjectID, milestoneID) {
		return apperrors.ErrCompletionRecordNotFound
	}

	if err := s.recordRepo.DeleteByKey(subjectID, milestoneID); err != nil {
		s.log.WithSubject(subjectID.String()).Errorf("failed to delete completion row for %s: %v", milestoneID, err)
	}

	return nil
}

// Retry moves a failed entry back to pending so the next sync picks it up
func (s *CompletionService) Retry(domain schedule.Domain, subjectID uuid.UUID, milestoneID string) (*CompletionResponse, error) {
	if _, err := s.template(domain); err != nil {
		return nil, err
	}

	record, err := s.ledger.Retry(subjectID, milestoneID)
	if err != nil {
		return nil, err
	}
	s.persist(record, domain)

	return toCompletionResponse(record), nil
}

// List returns every ledger entry for a subject
func (s *CompletionService) List(subjectID uuid.UUID) (*CompletionListResponse, error) {
	records := s.ledger.Get(subjectID)

	completions := make([]CompletionResponse, len(records))
	for i, record := range records {
		completions[i] = *toCompletionResponse(record)
	}

	return &CompletionListResponse{
		SubjectID:   subjectID,
		Completions: completions,
		Total:       len(completions),
	}, nil
}

// Sync pushes the subject's pending entries to the backend of record and
// persists the resulting statuses
func (s *CompletionService) Sync(ctx context.Context, subjectID uuid.UUID) (*SyncResponse, error) {
	report, err := s.syncer.SyncSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	s.persistSubject(subjectID)

	return &SyncResponse{
		SubjectID: subjectID,
		Attempted: report.Attempted,
		Synced:    report.Synced,
		Failed:    report.Failed,
		Discarded: report.Discarded,
	}, nil
}

// Seed pulls the backend's confirmed completions for a subject into the
// ledger. Local pending and failed entries always win over the pulled state.
func (s *CompletionService) Seed(ctx context.Context, subjectID uuid.UUID) (int, error) {
	applied, err := s.syncer.SeedSubject(ctx, subjectID)
	if err != nil {
		return 0, err
	}

	s.persistSubject(subjectID)
	return applied, nil
}

func (s *CompletionService) template(domain schedule.Domain) (*schedule.Template, error) {
	if !domain.IsValid() {
		return nil, apperrors.ErrInvalidDomain
	}
	tmpl, err := s.registry.Get(domain)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s schedule: %w", domain, err)
	}
	return tmpl, nil
}

// checkSubject verifies the subject exists in the store that matches the
// domain: children anchor vaccinations, pregnancies anchor the gestational
// schedules. Completions for closed pregnancies are rejected.
func (s *CompletionService) checkSubject(domain schedule.Domain, subjectID uuid.UUID) error {
	if domain == schedule.DomainVaccination {
		_, err := s.childRepo.GetByID(subjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSubjectNotFound
			}
			return fmt.Errorf("failed to get child: %w", err)
		}
		return nil
	}

	pregnancy, err := s.pregnancyRepo.GetByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("failed to get pregnancy: %w", err)
	}
	if pregnancy.Status != models.PregnancyStatusActive {
		return apperrors.ErrPregnancyNotActive
	}
	return nil
}

// detailsFor picks the details branch matching the domain; branches for other
// domains must not be set
func detailsFor(domain schedule.Domain, req *MarkCompletionRequest) (ledger.CompletionDetails, error) {
	var details ledger.CompletionDetails
	switch domain {
	case schedule.DomainVaccination:
		if req.Checkup != nil || req.Milestone != nil {
			return details, apperrors.ErrMilestoneNotInDomain
		}
		details.Vaccination = req.Vaccination
	case schedule.DomainPrenatalCheckup:
		if req.Vaccination != nil || req.Milestone != nil {
			return details, apperrors.ErrMilestoneNotInDomain
		}
		details.Checkup = req.Checkup
	case schedule.DomainPregnancyMilestone:
		if req.Vaccination != nil || req.Checkup != nil {
			return details, apperrors.ErrMilestoneNotInDomain
		}
		details.Milestone = req.Milestone
	}
	return details, nil
}

// persist mirrors one ledger entry to its durable row. The ledger stays
// authoritative, so persistence failures are logged rather than surfaced.
func (s *CompletionService) persist(record ledger.CompletionRecord, domain schedule.Domain) {
	if err := s.recordRepo.Save(record, string(domain)); err != nil {
		s.log.WithSubject(record.SubjectID.String()).Errorf("failed to persist completion row for %s: %v", record.MilestoneID, err)
	}
}

// persistSubject mirrors every ledger entry of a subject after a sync run
func (s *CompletionService) persistSubject(subjectID uuid.UUID) {
	for _, record := range s.ledger.Get(subjectID) {
		domain, ok := s.domainFor(record.MilestoneID)
		if !ok {
			continue
		}
		s.persist(record, domain)
	}
}

// domainFor resolves which schedule a milestone belongs to
func (s *CompletionService) domainFor(milestoneID string) (schedule.Domain, bool) {
	for _, domain := range s.registry.Domains() {
		tmpl, err := s.registry.Get(domain)
		if err != nil {
			continue
		}
		if _, ok := tmpl.Milestone(milestoneID); ok {
			return domain, true
		}
	}
	return "", false
}

func toCompletionResponse(record ledger.CompletionRecord) *CompletionResponse {
	return &CompletionResponse{
		SubjectID:      record.SubjectID,
		MilestoneID:    record.MilestoneID,
		CompletedAt:    record.CompletedAt.UTC().Format(time.RFC3339),
		Details:        record.Details,
		SyncStatus:     record.SyncStatus,
		LocalRevision:  record.LocalRevision,
		ServerRevision: record.ServerRevision,
		UpdatedAt:      record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
