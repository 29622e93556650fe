// internal/api/handlers/applications.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/codescope-coders/codescope-rework/internal/services"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate, logger: logger}
}

// ListApplications godoc
// @Summary      List applications for triage
// @Description  Filters by search (email or full name), status, jobId and availability window; sorts by expected salary mode, then status, then newest.
// @Tags         applications
// @Produce      json
// @Param        search query string false "Substring match on email or full name"
// @Param        status query string false "PENDING, APPROVED, REJECTED or INTERVIEWED"
// @Param        jobId query int false "Restrict to one job"
// @Param        expectedSalary query string false "lowest or highest"
// @Param        availability query string false "immediate, soonest or later"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "fieldErrors": FormatValidationErrors(err)})
		return
	}

	apps, err := h.service.ListApplications(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("listing applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications."})
		return
	}
	c.JSON(http.StatusOK, respond("Applications fetched successfully.", apps))
}

// GetApplicationByID godoc
// @Summary      Get an application by ID
// @Tags         applications
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	app, err := h.service.GetApplicationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found."})
			return
		}
		h.logger.Error("fetching application", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch application."})
		return
	}
	c.JSON(http.StatusOK, respond("Application fetched successfully.", app))
}

// SubmitApplication godoc
// @Summary      Submit an application
// @Description  Public submission against an AVAILABLE job. Field errors are collected and returned together.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body dto.CreateApplicationRequest true "Application details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      413 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.service.SubmitApplication(c.Request.Context(), &req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, respondFieldErrors("Validation failed.", verr))
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
		case errors.Is(err, services.ErrJobUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"message": "This job is no longer accepting applications."})
		default:
			h.logger.Error("submitting application", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application."})
		}
		return
	}
	c.JSON(http.StatusCreated, respond("Application submitted successfully.", app))
}

// UpdateApplication godoc
// @Summary      Update an application
// @Description  Partial update; typically used to move an application through triage statuses.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path int true "Application ID"
// @Param        application body dto.UpdateApplicationRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /applications/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if !req.HasFields() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields provided for update."})
		return
	}

	app, err := h.service.UpdateApplication(c.Request.Context(), id, &req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, respondFieldErrors("Validation failed.", verr))
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found."})
		default:
			h.logger.Error("updating application", zap.Int("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application."})
		}
		return
	}
	c.JSON(http.StatusOK, respond("Application updated successfully.", app))
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Removes the record and, best effort, its stored CV file.
// @Tags         applications
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteApplication(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found."})
			return
		}
		h.logger.Error("deleting application", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete application."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully.", "success": true})
}
