package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "maternal-care-backend/internal/errors"
	"maternal-care-backend/internal/service"
)

// ChildHandler handles child registry endpoints
type ChildHandler struct {
	childService service.ChildServiceInterface
}

// NewChildHandler creates a new child handler
func NewChildHandler(childService service.ChildServiceInterface) *ChildHandler {
	return &ChildHandler{
		childService: childService,
	}
}

// CreateChild creates a new child record
// @Summary Create a child
// @Description Register a new child in the system
// @Tags children
// @Accept json
// @Produce json
// @Param child body service.CreateChildRequest true "Child data"
// @Success 201 {object} service.ChildResponse "Child created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Child with this medical record number already exists"
// @Router /api/v1/children [post]
func (h *ChildHandler) CreateChild(c *gin.Context) {
	var req service.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	child, err := h.childService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrChildExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, child)
}

// GetChild retrieves a child by ID
// @Summary Get a child
// @Description Get a child record by its ID
// @Tags children
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} service.ChildResponse "Child found"
// @Failure 400 {object} ErrorResponse "Invalid child ID"
// @Failure 404 {object} ErrorResponse "Child not found"
// @Router /api/v1/children/{id} [get]
func (h *ChildHandler) GetChild(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child ID"})
		return
	}

	child, err := h.childService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get child"})
		return
	}

	c.JSON(http.StatusOK, child)
}

// GetChildByMedicalRecordNumber retrieves a child by medical record number
// @Summary Get a child by medical record number
// @Description Get a child record by its medical record number
// @Tags children
// @Accept json
// @Produce json
// @Param mrn path string true "Medical record number"
// @Success 200 {object} service.ChildResponse "Child found"
// @Failure 404 {object} ErrorResponse "Child not found"
// @Router /api/v1/children/mrn/{mrn} [get]
func (h *ChildHandler) GetChildByMedicalRecordNumber(c *gin.Context) {
	mrn := c.Param("mrn")

	child, err := h.childService.GetByMedicalRecordNumber(mrn)
	if err != nil {
		if errors.Is(err, apperrors.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get child"})
		return
	}

	c.JSON(http.StatusOK, child)
}

// ListChildren lists children with pagination
// @Summary List children
// @Description Get a paginated list of registered children
// @Tags children
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param born_after query string false "Only children born after this date (YYYY-MM-DD)"
// @Success 200 {object} service.ChildListResponse "List of children"
// @Failure 400 {object} ErrorResponse "Invalid born_after date"
// @Router /api/v1/children [get]
func (h *ChildHandler) ListChildren(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var children *service.ChildListResponse
	var err error
	if bornAfter := c.Query("born_after"); bornAfter != "" {
		children, err = h.childService.GetBornAfter(bornAfter, page, pageSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, children)
		return
	}

	children, err = h.childService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list children"})
		return
	}

	c.JSON(http.StatusOK, children)
}

// UpdateChild updates a child record
// @Summary Update a child
// @Description Update an existing child record
// @Tags children
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Param child body service.UpdateChildRequest true "Fields to update"
// @Success 200 {object} service.ChildResponse "Child updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Child not found"
// @Router /api/v1/children/{id} [put]
func (h *ChildHandler) UpdateChild(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child ID"})
		return
	}

	var req service.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	child, err := h.childService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, child)
}

// DeleteChild deletes a child record
// @Summary Delete a child
// @Description Delete a child record by its ID
// @Tags children
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Success 204 "Child deleted"
// @Failure 400 {object} ErrorResponse "Invalid child ID"
// @Failure 404 {object} ErrorResponse "Child not found"
// @Router /api/v1/children/{id} [delete]
func (h *ChildHandler) DeleteChild(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child ID"})
		return
	}

	if err := h.childService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrChildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete child"})
		return
	}

	c.Status(http.StatusNoContent)
}
