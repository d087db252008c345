package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riordino/internal/config"
	"riordino/internal/service"
)

const validExtract = "Codice articolo,Fornitore,Quantità Spedita,Pezzi per collo\n" +
	"A001,ACME,300,50\n"

func newTestHandler(t *testing.T, outputDir string) *AnalysisHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			UploadDir: filepath.Join(t.TempDir(), "uploads"),
			OutputDir: outputDir,
		},
		Engine: config.EngineConfig{LeadTimeDays: 10, CoverageDays: 45, SafetyDays: 15},
	}
	require.NoError(t, os.MkdirAll(cfg.App.UploadDir, 0755))

	store := service.NewResultStore()
	svc := service.NewAnalysisService(cfg.App.OutputDir, store)
	return NewAnalysisHandler(cfg, svc, store)
}

func performUpload(t *testing.T, h *AnalysisHandler, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	router := gin.New()
	router.POST("/api/v1/analysis", h.Upload)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadSucceeds(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), "out"))
	rec := performUpload(t, h, "vendite 01.01.25_30.01.25.csv", validExtract)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_qty_to_order")
}

func TestUploadUnreadableFileIsBadRequest(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), "out"))
	rec := performUpload(t, h, "report.pdf", "not an extract")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMissingProductCodeIsUnprocessable(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), "out"))
	rec := performUpload(t, h, "vendite.csv", "Fornitore,Quantità Spedita\nACME,300\n")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUploadOutputFailureIsInternalError(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	// A valid upload that fails server-side because the output root
	// sits under a regular file.
	h := newTestHandler(t, filepath.Join(blocked, "out"))
	rec := performUpload(t, h, "vendite.csv", validExtract)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUploadSameFilenameTwiceKeepsBothFiles(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), "out"))

	rec := performUpload(t, h, "vendite.csv", validExtract)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = performUpload(t, h, "vendite.csv", validExtract)
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := os.ReadDir(h.cfg.App.UploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), "-vendite.csv"))
	}
}
