package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maternal-care-backend/internal/database/models"
	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/service"
)

// PregnancyHandler handles pregnancy registry endpoints
type PregnancyHandler struct {
	pregnancyService service.PregnancyServiceInterface
}

// NewPregnancyHandler creates a new pregnancy handler
func NewPregnancyHandler(pregnancyService service.PregnancyServiceInterface) *PregnancyHandler {
	return &PregnancyHandler{
		pregnancyService: pregnancyService,
	}
}

// ClosePregnancyRequest represents the body for closing a pregnancy
type ClosePregnancyRequest struct {
	Status models.PregnancyStatus `json:"status" binding:"required"`
}

// CreatePregnancy creates a new pregnancy record
// @Summary Create a pregnancy
// @Description Register a new pregnancy in the system
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param pregnancy body service.CreatePregnancyRequest true "Pregnancy data"
// @Success 201 {object} service.PregnancyResponse "Pregnancy created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /api/v1/pregnancies [post]
func (h *PregnancyHandler) CreatePregnancy(c *gin.Context) {
	var req service.CreatePregnancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	pregnancy, err := h.pregnancyService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPregnancyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pregnancy)
}

// GetPregnancy retrieves a pregnancy by ID
// @Summary Get a pregnancy
// @Description Get a pregnancy record by its ID
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param id path string true "Pregnancy ID"
// @Success 200 {object} service.PregnancyResponse "Pregnancy found"
// @Failure 400 {object} ErrorResponse "Invalid pregnancy ID"
// @Failure 404 {object} ErrorResponse "Pregnancy not found"
// @Router /api/v1/pregnancies/{id} [get]
func (h *PregnancyHandler) GetPregnancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pregnancy ID"})
		return
	}

	pregnancy, err := h.pregnancyService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPregnancyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get pregnancy"})
		return
	}

	c.JSON(http.StatusOK, pregnancy)
}

// ListPregnancies lists pregnancies with pagination
// @Summary List pregnancies
// @Description Get a paginated list of pregnancies, optionally filtered by status
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Filter by status (active, delivered, closed)"
// @Success 200 {object} service.PregnancyListResponse "List of pregnancies"
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Router /api/v1/pregnancies [get]
func (h *PregnancyHandler) ListPregnancies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var pregnancies *service.PregnancyListResponse
	var err error
	if status := c.Query("status"); status != "" {
		pregnancies, err = h.pregnancyService.GetByStatus(models.PregnancyStatus(status), page, pageSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, pregnancies)
		return
	}

	pregnancies, err = h.pregnancyService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pregnancies"})
		return
	}

	c.JSON(http.StatusOK, pregnancies)
}

// ListActivePregnancies lists active pregnancies
// @Summary List active pregnancies
// @Description Get a paginated list of currently active pregnancies ordered by expected delivery date
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PregnancyListResponse "List of active pregnancies"
// @Router /api/v1/pregnancies/active [get]
func (h *PregnancyHandler) ListActivePregnancies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	pregnancies, err := h.pregnancyService.GetActive(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pregnancies"})
		return
	}

	c.JSON(http.StatusOK, pregnancies)
}

// UpdatePregnancy updates a pregnancy record
// @Summary Update a pregnancy
// @Description Update an existing pregnancy record
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param id path string true "Pregnancy ID"
// @Param pregnancy body service.UpdatePregnancyRequest true "Fields to update"
// @Success 200 {object} service.PregnancyResponse "Pregnancy updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Pregnancy not found"
// @Router /api/v1/pregnancies/{id} [put]
func (h *PregnancyHandler) UpdatePregnancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pregnancy ID"})
		return
	}

	var req service.UpdatePregnancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	pregnancy, err := h.pregnancyService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPregnancyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pregnancy)
}

// ClosePregnancy closes an active pregnancy
// @Summary Close a pregnancy
// @Description Transition an active pregnancy to delivered or closed
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param id path string true "Pregnancy ID"
// @Param body body ClosePregnancyRequest true "Target status"
// @Success 200 {object} service.PregnancyResponse "Pregnancy closed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Pregnancy not found"
// @Failure 409 {object} ErrorResponse "Pregnancy is not active"
// @Router /api/v1/pregnancies/{id}/close [post]
func (h *PregnancyHandler) ClosePregnancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pregnancy ID"})
		return
	}

	var req ClosePregnancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	pregnancy, err := h.pregnancyService.Close(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPregnancyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPregnancyNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, pregnancy)
}

// DeletePregnancy deletes a pregnancy record
// @Summary Delete a pregnancy
// @Description Delete a pregnancy record by its ID
// @Tags pregnancies
// @Accept json
// @Produce json
// @Param id path string true "Pregnancy ID"
// @Success 204 "Pregnancy deleted"
// @Failure 400 {object} ErrorResponse "Invalid pregnancy ID"
// @Failure 404 {object} ErrorResponse "Pregnancy not found"
// @Router /api/v1/pregnancies/{id} [delete]
func (h *PregnancyHandler) DeletePregnancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pregnancy ID"})
		return
	}

	if err := h.pregnancyService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPregnancyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete pregnancy"})
		return
	}

	c.Status(http.StatusNoContent)
}
