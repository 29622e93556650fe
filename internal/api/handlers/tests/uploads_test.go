package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codescope-coders/codescope-rework/internal/api/handlers"
	"github.com/codescope-coders/codescope-rework/internal/storage/files"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupUploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := files.NewCVStore(afero.NewMemMapFs(), "public/uploads")
	handler := handlers.NewUploadHandler(store, zap.NewNop())

	router := gin.New()
	router.POST("/upload", handler.UploadCv)
	router.DELETE("/upload", handler.DeleteCv)
	router.GET("/uploads/*filepath", handler.ServeUpload)
	return router
}

func multipartCv(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadHandler_UploadAndServe(t *testing.T) {
	router := setupUploadRouter(t)

	body, contentType := multipartCv(t, "cv", "jane-doe.pdf", []byte("%PDF-1.4 test"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	cvURL := resp["cvUrl"].(string)
	assert.Contains(t, cvURL, "/uploads/cvs/")
	assert.Contains(t, cvURL, "jane-doe.pdf")

	serve := httptest.NewRecorder()
	router.ServeHTTP(serve, httptest.NewRequest(http.MethodGet, cvURL, nil))

	require.Equal(t, http.StatusOK, serve.Code)
	assert.Equal(t, "application/pdf", serve.Header().Get("Content-Type"))
	assert.Contains(t, serve.Header().Get("Cache-Control"), "immutable")
	assert.Equal(t, "%PDF-1.4 test", serve.Body.String())
}

func TestUploadHandler_RejectsNonPdf(t *testing.T) {
	router := setupUploadRouter(t)

	body, contentType := multipartCv(t, "cv", "resume.docx", []byte("PK"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only PDF files are allowed.", decodeBody(t, w)["message"])
}

func TestUploadHandler_MissingFile(t *testing.T) {
	router := setupUploadRouter(t)

	body, contentType := multipartCv(t, "attachment", "cv.pdf", []byte("%PDF"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded.", decodeBody(t, w)["message"])
}

func TestUploadHandler_DeleteByFileName(t *testing.T) {
	router := setupUploadRouter(t)

	body, contentType := multipartCv(t, "cv", "cv.pdf", []byte("%PDF"))
	upload := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(upload, req)
	require.Equal(t, http.StatusCreated, upload.Code)
	fileName := decodeBody(t, upload)["fileName"].(string)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/upload?fileName="+fileName, nil))
	require.Equal(t, http.StatusOK, w.Code)

	// File is gone afterwards.
	gone := httptest.NewRecorder()
	router.ServeHTTP(gone, httptest.NewRequest(http.MethodGet, "/uploads/cvs/"+fileName, nil))
	assert.Equal(t, http.StatusNotFound, gone.Code)

	// Deleting again reports not found.
	again := httptest.NewRecorder()
	router.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/upload?fileName="+fileName, nil))
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestUploadHandler_DeleteRequiresFileName(t *testing.T) {
	router := setupUploadRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/upload", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
