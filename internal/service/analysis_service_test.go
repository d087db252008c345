package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riordino/internal/domain"
	"riordino/internal/report"
)

func writeExtract(t *testing.T, dir, name string) *domain.UploadedFile {
	t.Helper()
	content := strings.Join([]string{
		"Codice articolo,Fornitore,Quantità Spedita,Pezzi per collo",
		"A001,ACME,300,50",
		"A002,Beta,30,0",
	}, "\n")
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return &domain.UploadedFile{Filename: name, Path: path, Size: info.Size()}
}

func TestAnalysisServiceRun(t *testing.T) {
	dir := t.TempDir()
	store := NewResultStore()
	svc := NewAnalysisService(filepath.Join(dir, "out"), store)

	file := writeExtract(t, dir, "vendite 01.01.25_30.01.25.csv")
	result, err := svc.Run(context.Background(), AnalysisRequest{
		File:   file,
		Params: domain.DefaultParams(),
		Sort:   report.SortAlphabetical,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, result.PeriodDays)
	require.NotNil(t, result.PeriodStart)
	require.NotNil(t, result.PeriodEnd)
	assert.Equal(t, 2, result.TotalItems)
	assert.Equal(t, 2, result.ItemsToOrder)
	// A001: demand 10 -> 700; A002: demand 1 -> 70 (no pack rounding).
	assert.Equal(t, 770, result.TotalQtyToOrder)
	// A002 has pack size zero.
	assert.Equal(t, 1, result.Exceptions)

	require.Len(t, result.Artifacts, 3)
	for _, path := range result.Artifacts {
		_, err := os.Stat(path)
		assert.NoError(t, err, "artifact %s should exist", path)
	}

	stored, ok := store.Get(result.ID)
	require.True(t, ok)
	assert.Equal(t, result.ID, stored.ID)

	records, ok := store.Records(result.ID)
	require.True(t, ok)
	assert.Len(t, records, 2)
}

func TestAnalysisServiceRunNoPeriodInFilename(t *testing.T) {
	dir := t.TempDir()
	svc := NewAnalysisService(filepath.Join(dir, "out"), NewResultStore())

	file := writeExtract(t, dir, "vendite.csv")
	result, err := svc.Run(context.Background(), AnalysisRequest{
		File:   file,
		Params: domain.DefaultParams(),
		Sort:   report.SortAlphabetical,
	})
	require.NoError(t, err)
	assert.Nil(t, result.PeriodStart)
	assert.Equal(t, 30, result.PeriodDays)
}

func TestAnalysisServiceRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewAnalysisService(filepath.Join(dir, "out"), NewResultStore())

	_, err := svc.Run(context.Background(), AnalysisRequest{
		File:   &domain.UploadedFile{Filename: "mancante.csv", Path: filepath.Join(dir, "mancante.csv")},
		Params: domain.DefaultParams(),
		Sort:   report.SortAlphabetical,
	})
	assert.ErrorIs(t, err, ErrUnreadableInput)
}

func TestAnalysisServiceRunUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	svc := NewAnalysisService(filepath.Join(dir, "out"), NewResultStore())

	path := filepath.Join(dir, "vendite.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not an extract"), 0644))

	_, err := svc.Run(context.Background(), AnalysisRequest{
		File:   &domain.UploadedFile{Filename: "vendite.pdf", Path: path},
		Params: domain.DefaultParams(),
		Sort:   report.SortAlphabetical,
	})
	assert.ErrorIs(t, err, ErrUnreadableInput)
}

func TestAnalysisServiceRunOutputFailureIsNotInputError(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	// Output root sits under a regular file, so the run directory
	// cannot be created.
	svc := NewAnalysisService(filepath.Join(blocked, "out"), NewResultStore())
	file := writeExtract(t, dir, "vendite 01.01.25_30.01.25.csv")

	_, err := svc.Run(context.Background(), AnalysisRequest{
		File:   file,
		Params: domain.DefaultParams(),
		Sort:   report.SortAlphabetical,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnreadableInput)
}

func TestResultStoreEmpty(t *testing.T) {
	store := NewResultStore()
	assert.Empty(t, store.List())

	_, ok := store.Get("run-assente")
	assert.False(t, ok)
	_, ok = store.Records("run-assente")
	assert.False(t, ok)
}
