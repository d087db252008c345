package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"riordino/internal/config"
	"riordino/internal/domain"
	"riordino/internal/engine"
	"riordino/internal/report"
	"riordino/internal/service"
)

type AnalysisHandler struct {
	cfg   *config.Config
	svc   *service.AnalysisService
	store *service.ResultStore
}

func NewAnalysisHandler(cfg *config.Config, svc *service.AnalysisService, store *service.ResultStore) *AnalysisHandler {
	return &AnalysisHandler{cfg: cfg, svc: svc, store: store}
}

// Upload receives one sales/stock extract with optional reorder parameters
// and runs the analysis to completion.
func (h *AnalysisHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	params := domain.Params{
		LeadTimeDays: parseNonNegativeIntWithDefault(c.PostForm("lead_time"), h.cfg.Engine.LeadTimeDays),
		CoverageDays: parseNonNegativeIntWithDefault(c.PostForm("coverage"), h.cfg.Engine.CoverageDays),
		SafetyDays:   parseNonNegativeIntWithDefault(c.PostForm("safety"), h.cfg.Engine.SafetyDays),
	}
	sortMode := report.SortAlphabetical
	if strings.EqualFold(c.PostForm("sort"), string(report.SortRelevance)) {
		sortMode = report.SortRelevance
	}

	// Saved under a unique name so concurrent uploads of the same
	// filename never overwrite each other mid-run.
	savedName := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	filePath := filepath.Join(h.cfg.App.UploadDir, savedName)
	if err := c.SaveUploadedFile(file, filePath); err != nil {
		log.Error().Err(err).Str("filename", file.Filename).Msg("failed to save uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}

	result, err := h.svc.Run(c.Request.Context(), service.AnalysisRequest{
		File: &domain.UploadedFile{
			Filename: file.Filename,
			Path:     filePath,
			Size:     file.Size,
		},
		Params: params,
		Sort:   sortMode,
	})
	if err != nil {
		log.Error().Err(err).Str("filename", file.Filename).Msg("analysis failed")
		switch {
		case errors.Is(err, engine.ErrMissingProductCode):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnreadableInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// List returns all completed runs, newest first.
func (h *AnalysisHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

// Get returns one run summary.
func (h *AnalysisHandler) Get(c *gin.Context) {
	result, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Preview returns the suggested orders of a run, sorted by vendor and
// product code, limited for display.
func (h *AnalysisHandler) Preview(c *gin.Context) {
	records, ok := h.store.Records(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}

	orders := report.OrdersOnly(records)
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].VendorName != orders[j].VendorName {
			return orders[i].VendorName < orders[j].VendorName
		}
		return orders[i].ProductCode < orders[j].ProductCode
	})

	limit := parsePositiveIntWithDefault(c.Query("limit"), 100)
	if len(orders) > limit {
		orders = orders[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// DownloadArtifact serves one of the run's export files as an attachment.
func (h *AnalysisHandler) DownloadArtifact(c *gin.Context) {
	result, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}

	name := c.Param("name")
	path, ok := result.Artifacts[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown artifact"})
		return
	}

	c.FileAttachment(path, name)
}

func parsePositiveIntWithDefault(value string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func parseNonNegativeIntWithDefault(value string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v >= 0 {
		return v
	}
	return fallback
}
