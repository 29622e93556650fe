// internal/api/handlers/jobs.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codescope-coders/codescope-rework/internal/services"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate, logger *zap.Logger) *JobHandler {
	return &JobHandler{service: service, validator: validate, logger: logger}
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id."})
		return 0, false
	}
	return id, true
}

// ListJobs godoc
// @Summary      List job postings
// @Description  Lists jobs, open postings first. Supports search, status and type filters, optional pagination and computed application fields.
// @Tags         jobs
// @Produce      json
// @Param        search query string false "Substring match on position"
// @Param        status query string false "AVAILABLE or CLOSED"
// @Param        type query string false "Employment type"
// @Param        page query int false "Page number (with limit)"
// @Param        limit query int false "Page size (with page)"
// @Param        fields query string false "Comma list: total_applications, applications"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "fieldErrors": FormatValidationErrors(err)})
		return
	}

	jobs, pagination, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("listing jobs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch jobs."})
		return
	}

	resp := respond("Jobs fetched successfully.", jobs)
	if pagination != nil {
		resp["pagination"] = pagination
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
			return
		}
		h.logger.Error("fetching job", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch job."})
		return
	}
	c.JSON(http.StatusOK, respond("Job fetched successfully.", job))
}

// CreateJob godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body dto.CreateJobRequest true "Job details"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "fieldErrors": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, respondFieldErrors("Validation failed.", verr))
			return
		}
		h.logger.Error("creating job", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job."})
		return
	}
	c.JSON(http.StatusCreated, respond("Job created successfully.", job))
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        job body dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if !req.HasFields() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields provided for update."})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "fieldErrors": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), id, &req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, respondFieldErrors("Validation failed.", verr))
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
		default:
			h.logger.Error("updating job", zap.Int("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job."})
		}
		return
	}
	c.JSON(http.StatusOK, respond("Job updated successfully.", job))
}

// ToggleJobStatus godoc
// @Summary      Toggle a job between AVAILABLE and CLOSED
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /jobs/{id}/toggle [put]
// @Security     BearerAuth
func (h *JobHandler) ToggleJobStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.service.ToggleJobStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
			return
		}
		h.logger.Error("toggling job status", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to toggle job status."})
		return
	}
	c.JSON(http.StatusOK, respond("Job status updated successfully.", job))
}

// DeleteJob godoc
// @Summary      Delete a job posting and its applications
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
			return
		}
		h.logger.Error("deleting job", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully.", "success": true})
}
