package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/service"
)

// TimelineHandler handles care schedule timeline endpoints
type TimelineHandler struct {
	timelineService service.TimelineServiceInterface
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService service.TimelineServiceInterface) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// GetChildImmunizations returns the vaccination timeline for a child
// @Summary Get child immunization timeline
// @Description Evaluate the vaccination schedule for a child against recorded completions
// @Tags timelines
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} service.TimelineResponse "Vaccination timeline"
// @Failure 400 {object} ErrorResponse "Invalid child ID"
// @Failure 404 {object} ErrorResponse "Child not found"
// @Router /api/v1/children/{id}/immunizations [get]
func (h *TimelineHandler) GetChildImmunizations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child ID"})
		return
	}

	timeline, err := h.timelineService.ChildImmunizations(id)
	if err != nil {
		h.respondTimelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// GetPregnancyCheckups returns the antenatal checkup timeline for a pregnancy
// @Summary Get pregnancy checkup timeline
// @Description Evaluate the antenatal checkup schedule for a pregnancy against recorded completions
// @Tags timelines
// @Accept json
// @Produce json
// @Param id path string true "Pregnancy ID"
// @Success 200 {object} service.TimelineResponse "Checkup timeline"
// @Failure 400 {object} ErrorResponse "Invalid pregnancy ID"
// @Failure 404 {object} ErrorResponse "Pregnancy not found"
// @Router /api/v1/pregnancies/{id}/checkups [get]
func (h *TimelineHandler) GetPregnancyCheckups(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pregnancy ID"})
		return
	}

	timeline, err := h.timelineService.PregnancyCheckups(id)
	if err != nil {
		h.respondTimelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// GetPregnancyMilestones returns the pregnancy milestone timeline
// @Summary Get pregnancy milestone timeline
// @Description Evaluate the pregnancy milestone schedule against recorded completions
// @Tags timelines
// @Accept json
// @Produce json
// @Param id path string true "Pregnancy ID"
// @Success 200 {object} service.TimelineResponse "Milestone timeline"
// @Failure 400 {object} ErrorResponse "Invalid pregnancy ID"
// @Failure 404 {object} ErrorResponse "Pregnancy not found"
// @Router /api/v1/pregnancies/{id}/milestones [get]
func (h *TimelineHandler) GetPregnancyMilestones(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pregnancy ID"})
		return
	}

	timeline, err := h.timelineService.PregnancyMilestones(id)
	if err != nil {
		h.respondTimelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

func (h *TimelineHandler) respondTimelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrChildNotFound), errors.Is(err, apperrors.ErrPregnancyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate timeline"})
	}
}
