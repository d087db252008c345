package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riordino/internal/domain"
)

func TestName(t *testing.T) {
	assert.Equal(t, "quantitaspedita", Name("Quantità Spedita"))
	assert.Equal(t, "giacenzatotale", Name("  Giacenza - Totale!  "))
	assert.Equal(t, "pezzicolloscatola", Name("Pezzi collo/scatola"))
	assert.Equal(t, "", Name("---"))
}

func TestRenamedMatchesSynonyms(t *testing.T) {
	cases := map[string]string{
		"Codice articolo":                 domain.FieldProductCode,
		"Quantità Spedita":                domain.FieldQtyShippedPeriod,
		"quantitaspedita":                 domain.FieldQtyShippedPeriod,
		"Giacenza totale":                 domain.FieldStockOnHandTotal,
		"STOCK":                           domain.FieldStockOnHandTotal,
		"Fornitore":                       domain.FieldVendorName,
		"Quantità ordinata dai fornitori": domain.FieldQtyAlreadyOrdered,
		"Quantità ordinata dai clienti":   domain.FieldQtyCommitted,
		"Media 6 mesi":                    domain.FieldAvgSalesLast6Months,
		"Pezzi per collo":                 domain.FieldPackSize,
	}
	for header, want := range cases {
		got := Renamed([]string{header})
		assert.Equal(t, []string{want}, got, "header %q", header)
	}
}

func TestRenamedCaseAccentSpaceInsensitive(t *testing.T) {
	a := Renamed([]string{"Quantità Spedita"})
	b := Renamed([]string{"quantitaspedita"})
	assert.Equal(t, a, b)
	assert.Equal(t, domain.FieldQtyShippedPeriod, a[0])
}

func TestRenamedUnrecognizedPassThrough(t *testing.T) {
	got := Renamed([]string{"Some Unknown Column!"})
	// Normalized, never the raw header and never dropped.
	assert.Equal(t, []string{"someunknowncolumn"}, got)
}

func TestRenamedDuplicateSuffixing(t *testing.T) {
	got := Renamed([]string{"Codice articolo", "Articolo", "CodProd"})
	assert.Equal(t, []string{
		domain.FieldProductCode,
		domain.FieldProductCode + "_2",
		domain.FieldProductCode + "_3",
	}, got)
}

func TestRenamedDuplicateUnrecognized(t *testing.T) {
	got := Renamed([]string{"Extra", "extra!"})
	assert.Equal(t, []string{"extra", "extra_2"}, got)
}

func TestColumnsMapping(t *testing.T) {
	got := Columns([]string{"Codice articolo", "Fornitore", "Note varie"})
	assert.Equal(t, map[string]string{
		"Codice articolo": domain.FieldProductCode,
		"Fornitore":       domain.FieldVendorName,
		"Note varie":      "notevarie",
	}, got)
}
