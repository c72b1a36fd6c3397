package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/schedule"
	"maternal-care-backend/internal/service"
)

// CompletionHandler handles completion ledger and sync endpoints
type CompletionHandler struct {
	completionService service.CompletionServiceInterface
}

// NewCompletionHandler creates a new completion handler
func NewCompletionHandler(completionService service.CompletionServiceInterface) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// MarkCompletion records a milestone as completed
// @Summary Mark a milestone completed
// @Description Record that a schedule milestone has been completed for a subject. Marking again overwrites details and bumps the local revision.
// @Tags completions
// @Accept json
// @Produce json
// @Param domain path string true "Schedule domain (vaccination, prenatal_checkup, pregnancy_milestone)"
// @Param subjectId path string true "Subject ID (child or pregnancy)"
// @Param milestoneId path string true "Milestone ID"
// @Param completion body service.MarkCompletionRequest true "Completion details"
// @Success 200 {object} service.CompletionResponse "Completion recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Subject or milestone not found"
// @Failure 409 {object} ErrorResponse "Pregnancy is not active"
// @Router /api/v1/completions/{domain}/{subjectId}/{milestoneId} [put]
func (h *CompletionHandler) MarkCompletion(c *gin.Context) {
	domain, subjectID, milestoneID, ok := h.completionKey(c)
	if !ok {
		return
	}

	var req service.MarkCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	completion, err := h.completionService.Mark(domain, subjectID, milestoneID, &req)
	if err != nil {
		h.respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}

// RevertCompletion removes a completion record
// @Summary Revert a completion
// @Description Remove the completion record for a milestone so it is evaluated against the schedule again
// @Tags completions
// @Accept json
// @Produce json
// @Param domain path string true "Schedule domain"
// @Param subjectId path string true "Subject ID"
// @Param milestoneId path string true "Milestone ID"
// @Success 204 "Completion reverted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Completion record not found"
// @Router /api/v1/completions/{domain}/{subjectId}/{milestoneId} [delete]
func (h *CompletionHandler) RevertCompletion(c *gin.Context) {
	domain, subjectID, milestoneID, ok := h.completionKey(c)
	if !ok {
		return
	}

	if err := h.completionService.Revert(domain, subjectID, milestoneID); err != nil {
		h.respondCompletionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RetryCompletion re-queues a failed completion record for sync
// @Summary Retry a failed sync
// @Description Move a completion record whose last sync attempt failed back to pending
// @Tags completions
// @Accept json
// @Produce json
// @Param domain path string true "Schedule domain"
// @Param subjectId path string true "Subject ID"
// @Param milestoneId path string true "Milestone ID"
// @Success 200 {object} service.CompletionResponse "Record re-queued"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Completion record not found"
// @Failure 409 {object} ErrorResponse "Record is not in failed state"
// @Router /api/v1/completions/{domain}/{subjectId}/{milestoneId}/retry [post]
func (h *CompletionHandler) RetryCompletion(c *gin.Context) {
	domain, subjectID, milestoneID, ok := h.completionKey(c)
	if !ok {
		return
	}

	completion, err := h.completionService.Retry(domain, subjectID, milestoneID)
	if err != nil {
		h.respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}

// ListCompletions lists all completion records for a subject
// @Summary List completions
// @Description Get every completion record the ledger holds for a subject
// @Tags completions
// @Accept json
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} service.CompletionListResponse "Completion records"
// @Failure 400 {object} ErrorResponse "Invalid subject ID"
// @Router /api/v1/completions/{subjectId} [get]
func (h *CompletionHandler) ListCompletions(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject ID"})
		return
	}

	completions, err := h.completionService.List(subjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list completions"})
		return
	}

	c.JSON(http.StatusOK, completions)
}

// SyncSubject pushes pending completion records to the remote registry
// @Summary Sync a subject
// @Description Push all pending completion records for a subject to the remote registry and reconcile the results
// @Tags sync
// @Accept json
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} service.SyncResponse "Sync report"
// @Failure 400 {object} ErrorResponse "Invalid subject ID"
// @Failure 502 {object} ErrorResponse "Remote registry unreachable"
// @Router /api/v1/sync/{subjectId} [post]
func (h *CompletionHandler) SyncSubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject ID"})
		return
	}

	report, err := h.completionService.Sync(c.Request.Context(), subjectID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// SeedSubject pulls server state for a subject into the local ledger
// @Summary Seed a subject
// @Description Pull the remote registry's completion records for a subject and merge them into the local ledger
// @Tags sync
// @Accept json
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} map[string]int "Number of records applied"
// @Failure 400 {object} ErrorResponse "Invalid subject ID"
// @Failure 502 {object} ErrorResponse "Remote registry unreachable"
// @Router /api/v1/sync/{subjectId}/seed [post]
func (h *CompletionHandler) SeedSubject(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject ID"})
		return
	}

	applied, err := h.completionService.Seed(c.Request.Context(), subjectID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// completionKey parses the domain, subject and milestone path parameters.
func (h *CompletionHandler) completionKey(c *gin.Context) (schedule.Domain, uuid.UUID, string, bool) {
	domain := schedule.Domain(c.Param("domain"))
	if !domain.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidDomain.Error()})
		return "", uuid.Nil, "", false
	}

	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject ID"})
		return "", uuid.Nil, "", false
	}

	milestoneID := c.Param("milestoneId")
	if milestoneID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "milestone ID is required"})
		return "", uuid.Nil, "", false
	}

	return domain, subjectID, milestoneID, true
}

func (h *CompletionHandler) respondCompletionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMilestoneNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrCompletionRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPregnancyNotActive),
		errors.Is(err, apperrors.ErrRecordNotFailed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
