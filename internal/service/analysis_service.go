package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"riordino/internal/domain"
	"riordino/internal/engine"
	"riordino/internal/ingest"
	"riordino/internal/period"
	"riordino/internal/report"
)

// Artifact file names inside each run's output directory.
const (
	ArtifactAnalysis        = "analisi_riordino.xlsx"
	ArtifactOrdersByVendor  = "ordini_per_fornitore.xlsx"
	ArtifactVendorsTemplate = "vendors_template.csv"
)

// ErrUnreadableInput marks failures caused by the uploaded file itself,
// as opposed to server-side failures while producing the outputs.
var ErrUnreadableInput = errors.New("unreadable input file")

// AnalysisRequest describes one reorder analysis run.
type AnalysisRequest struct {
	File   *domain.UploadedFile
	Params domain.Params
	Sort   report.SortMode
}

// AnalysisService runs the full pipeline for one uploaded extract: period
// resolution, ingest, reorder computation and artifact export.
type AnalysisService struct {
	outputDir string
	store     *ResultStore
}

func NewAnalysisService(outputDir string, store *ResultStore) *AnalysisService {
	return &AnalysisService{outputDir: outputDir, store: store}
}

// Run processes a single file to completion and registers the result in
// the store. Data-quality problems never fail the run; only structurally
// invalid input does.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*domain.AnalysisResult, error) {
	start := time.Now()

	startDate, endDate := period.FromFilename(req.File.Filename)
	if startDate == nil || endDate == nil {
		log.Warn().Str("filename", req.File.Filename).
			Msg("no date range found in filename, assuming a 30 day period")
	}

	table, err := ingest.ReadFile(req.File.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}

	records, err := engine.ComputeReorder(table, startDate, endDate, req.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to compute reorder: %w", err)
	}

	id := fmt.Sprintf("run-%d", time.Now().UnixNano())
	runDir := filepath.Join(s.outputDir, id)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", runDir, err)
	}

	artifacts := map[string]string{
		ArtifactAnalysis:        filepath.Join(runDir, ArtifactAnalysis),
		ArtifactOrdersByVendor:  filepath.Join(runDir, ArtifactOrdersByVendor),
		ArtifactVendorsTemplate: filepath.Join(runDir, ArtifactVendorsTemplate),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return report.WriteAnalysisWorkbook(records, artifacts[ArtifactAnalysis])
	})
	g.Go(func() error {
		return report.WriteOrdersByVendorWorkbook(records, artifacts[ArtifactOrdersByVendor], req.Sort)
	})
	g.Go(func() error {
		return report.WriteVendorsTemplateCSV(records, artifacts[ArtifactVendorsTemplate])
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to write artifacts: %w", err)
	}

	orders := report.OrdersOnly(records)
	totalQty := 0
	for _, r := range orders {
		totalQty += r.QtyToOrder
	}

	result := &domain.AnalysisResult{
		ID:              id,
		Filename:        req.File.Filename,
		PeriodStart:     startDate,
		PeriodEnd:       endDate,
		PeriodDays:      period.Days(startDate, endDate),
		Params:          req.Params,
		TotalItems:      len(records),
		ItemsToOrder:    len(orders),
		TotalQtyToOrder: totalQty,
		Exceptions:      len(report.Exceptions(records)),
		Artifacts:       artifacts,
		CreatedAt:       time.Now(),
	}
	s.store.Put(result, records)

	log.Info().
		Str("id", id).
		Str("filename", req.File.Filename).
		Int("total_items", result.TotalItems).
		Int("items_to_order", result.ItemsToOrder).
		Int("total_qty_to_order", result.TotalQtyToOrder).
		Dur("elapsed", time.Since(start)).
		Msg("analysis completed")

	return result, nil
}
