package service

import (
	"context"

	"maternal-care-backend/internal/database/models"
	"maternal-care-backend/internal/reconcile"
	"maternal-care-backend/internal/schedule"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SubjectSyncer pushes a subject's pending completions to the backend of
// record and seeds local state from it. reconcile.Coordinator satisfies it.
type SubjectSyncer interface {
	SyncSubject(ctx context.Context, subjectID uuid.UUID) (*reconcile.SyncReport, error)
	SeedSubject(ctx context.Context, subjectID uuid.UUID) (int, error)
}

// ChildServiceInterface defines the interface for child service
type ChildServiceInterface interface {
	Create(req *CreateChildRequest) (*ChildResponse, error)
	GetByID(id uuid.UUID) (*ChildResponse, error)
	GetByMedicalRecordNumber(mrn string) (*ChildResponse, error)
	List(page, pageSize int) (*ChildListResponse, error)
	GetBornAfter(date string, page, pageSize int) (*ChildListResponse, error)
	Update(id uuid.UUID, req *UpdateChildRequest) (*ChildResponse, error)
	Delete(id uuid.UUID) error
}

// PregnancyServiceInterface defines the interface for pregnancy service
type PregnancyServiceInterface interface {
	Create(req *CreatePregnancyRequest) (*PregnancyResponse, error)
	GetByID(id uuid.UUID) (*PregnancyResponse, error)
	List(page, pageSize int) (*PregnancyListResponse, error)
	GetByStatus(status models.PregnancyStatus, page, pageSize int) (*PregnancyListResponse, error)
	GetActive(page, pageSize int) (*PregnancyListResponse, error)
	Update(id uuid.UUID, req *UpdatePregnancyRequest) (*PregnancyResponse, error)
	Close(id uuid.UUID, status models.PregnancyStatus) (*PregnancyResponse, error)
	Delete(id uuid.UUID) error
}

// TimelineServiceInterface defines the interface for timeline service
type TimelineServiceInterface interface {
	ChildImmunizations(childID uuid.UUID) (*TimelineResponse, error)
	PregnancyCheckups(pregnancyID uuid.UUID) (*TimelineResponse, error)
	PregnancyMilestones(pregnancyID uuid.UUID) (*TimelineResponse, error)
}

// CompletionServiceInterface defines the interface for completion service
type CompletionServiceInterface interface {
	Mark(domain schedule.Domain, subjectID uuid.UUID, milestoneID string, req *MarkCompletionRequest) (*CompletionResponse, error)
	Revert(domain schedule.Domain, subjectID uuid.UUID, milestoneID string) error
	Retry(domain schedule.Domain, subjectID uuid.UUID, milestoneID string) (*CompletionResponse, error)
	List(subjectID uuid.UUID) (*CompletionListResponse, error)
	Sync(ctx context.Context, subjectID uuid.UUID) (*SyncResponse, error)
	Seed(ctx context.Context, subjectID uuid.UUID) (int, error)
}
