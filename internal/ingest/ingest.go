// Package ingest reads an uploaded sales/stock extract (XLSX or CSV) into
// a Table with normalized column names.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"riordino/internal/domain"
	"riordino/internal/normalize"
)

// ReadFile dispatches on the file extension. Only .xlsx and .csv are
// supported.
func ReadFile(path string) (*domain.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open csv file %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported file extension %s for %s", filepath.Ext(path), path)
	}
}

// ReadXLSX reads the first sheet of an XLSX file. The first row is taken
// as the header and normalized; later rows become string cells keyed by
// the normalized column names.
func ReadXLSX(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	table := &domain.Table{}
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		if table.Columns == nil {
			if emptyRecord(record) {
				continue
			}
			table.Columns = normalize.Renamed(record)
			continue
		}
		appendRow(table, record)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}
	if table.Columns == nil {
		return nil, fmt.Errorf("xlsx file %s has no header row", path)
	}

	return table, nil
}

// ReadCSV reads a CSV stream the same way: first record is the normalized
// header, the rest are data rows.
func ReadCSV(r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	table := &domain.Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		if table.Columns == nil {
			if emptyRecord(record) {
				continue
			}
			table.Columns = normalize.Renamed(record)
			continue
		}
		appendRow(table, record)
	}
	if table.Columns == nil {
		return nil, fmt.Errorf("csv input has no header row")
	}

	return table, nil
}

func appendRow(table *domain.Table, record []string) {
	if emptyRecord(record) {
		return
	}
	row := make(map[string]string, len(table.Columns))
	for i, col := range table.Columns {
		if i < len(record) {
			row[col] = record[i]
		}
	}
	table.Rows = append(table.Rows, row)
}

func emptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
