package ingest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"riordino/internal/domain"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Codice articolo,Fornitore,Quantità Spedita,Note varie",
		"A001,ACME,10,qualcosa",
		",,,",
		"A002,Beta,5,",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.FieldProductCode, domain.FieldVendorName, domain.FieldQtyShippedPeriod, "notevarie",
	}, table.Columns)
	// The all-empty row is skipped.
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "A001", table.Rows[0][domain.FieldProductCode])
	assert.Equal(t, "10", table.Rows[0][domain.FieldQtyShippedPeriod])
	assert.Equal(t, "5", table.Rows[1][domain.FieldQtyShippedPeriod])
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "Codice articolo,Fornitore\nA001\n"
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "A001", table.Rows[0][domain.FieldProductCode])
	assert.Equal(t, "", table.Rows[0][domain.FieldVendorName])
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendite.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Codice articolo", "Giacenza totale", "Fornitore"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"A001", 120, "ACME"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"A002", 30, "Beta"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadXLSX(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.FieldProductCode, domain.FieldStockOnHandTotal, domain.FieldVendorName,
	}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "120", table.Rows[0][domain.FieldStockOnHandTotal])
	assert.Equal(t, "Beta", table.Rows[1][domain.FieldVendorName])
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	_, err := ReadFile("vendite.pdf")
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "mancante.xlsx"))
	assert.Error(t, err)
}
