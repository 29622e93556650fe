// internal/api/handlers/uploads.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxCvBytes caps uploaded CVs at 5MB.
const MaxCvBytes = 5 << 20

// UploadHandler holds dependencies for CV upload and serving.
type UploadHandler struct {
	files  storage.FileStore
	logger *zap.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(files storage.FileStore, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{files: files, logger: logger}
}

// UploadCv godoc
// @Summary      Upload a CV
// @Description  Accepts a single PDF up to 5MB in the multipart field "cv" and returns its public URL.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv formData file true "PDF file"
// @Success      201 {object} dto.UploadResponse
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /upload [post]
func (h *UploadHandler) UploadCv(c *gin.Context) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded."})
		return
	}
	if fileHeader.Size > MaxCvBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File size must be less than 5MB."})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF files are allowed."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("opening uploaded cv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxCvBytes+1))
	if err != nil {
		h.logger.Error("reading uploaded cv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file."})
		return
	}
	if len(data) > MaxCvBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File size must be less than 5MB."})
		return
	}

	url, fileName, err := h.files.Save(fileHeader.Filename, data)
	if err != nil {
		h.logger.Error("storing uploaded cv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file."})
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		Success:  true,
		Message:  "File uploaded successfully.",
		CvURL:    url,
		FileName: fileName,
	})
}

// DeleteCv godoc
// @Summary      Delete an uploaded CV by file name
// @Tags         uploads
// @Produce      json
// @Param        fileName query string true "Stored file name"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /upload [delete]
func (h *UploadHandler) DeleteCv(c *gin.Context) {
	fileName := c.Query("fileName")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "fileName is required."})
		return
	}

	if err := h.files.Delete(fileName); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "File not found."})
			return
		}
		h.logger.Error("deleting cv file", zap.String("fileName", fileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete file."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully.", "success": true})
}

// ServeUpload godoc
// @Summary      Serve a stored upload
// @Tags         uploads
// @Produce      octet-stream
// @Param        filepath path string true "Path under /uploads"
// @Success      200 {file} binary
// @Failure      404 {object} map[string]string
// @Router       /uploads/{filepath} [get]
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	relPath := c.Param("filepath")

	data, contentType, err := h.files.Open(relPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found."})
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, contentType, data)
}
