package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"riordino/internal/domain"
)

// Sheet names of the analysis workbook.
const (
	SheetSuggestedOrders = "Ordini_suggeriti"
	SheetFullDetail      = "Dettaglio_calcoli"
	SheetVendorSummary   = "Riepilogo_fornitori"
	SheetNearReorder     = "Vicini_riordino"
	SheetExceptions      = "Eccezioni"
	SheetNoOrders        = "Nessun_ordine"
)

// recordCaptions are the exported column captions, in output order.
var recordCaptions = []string{
	"Codice articolo",
	"Descrizione articolo",
	"Fornitore",
	"Quantità da ordinare",
	"Quantità spedita (periodo)",
	"Quantità ordinata ai fornitori",
	"Quantità ordinata dai clienti",
	"Giacenza totale",
	"Media vendite 6 mesi",
	"Pezzi collo/scatola",
	"Domanda giornaliera",
	"Scorta di sicurezza",
	"Punto di riordino",
	"Livello target",
	"Disponibilità proiettata",
	"Giorni di copertura",
	"Punteggio rilevanza",
}

func recordCells(r domain.ReorderRecord) []interface{} {
	coverage := interface{}(nil)
	if r.CoverageDays != nil {
		coverage = *r.CoverageDays
	}
	return []interface{}{
		r.ProductCode,
		r.ProductDescription,
		r.VendorName,
		r.QtyToOrder,
		r.QtyShippedPeriod,
		r.QtyAlreadyOrderedSuppliers,
		r.QtyCommittedOpenCustomerOrders,
		r.StockOnHandTotal,
		r.AvgSalesLast6Months,
		r.PackSize,
		r.DailyDemand,
		r.SafetyStockQty,
		r.ReorderPoint,
		r.TargetLevel,
		r.ProjectedAvailable,
		coverage,
		r.RelevanceScore,
	}
}

func writeRecordSheet(f *excelize.File, sheet string, records []domain.ReorderRecord) error {
	header := make([]interface{}, len(recordCaptions))
	for i, c := range recordCaptions {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := recordCells(r)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// WriteAnalysisWorkbook exports the full analysis workbook: suggested
// orders, complete calculation detail, per-vendor summary, the
// near-reorder watchlist and the exceptions sheet.
func WriteAnalysisWorkbook(records []domain.ReorderRecord, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSuggestedOrders); err != nil {
		return err
	}
	for _, sheet := range []string{SheetFullDetail, SheetVendorSummary, SheetNearReorder, SheetExceptions} {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	orders := OrdersOnly(records)
	if err := writeRecordSheet(f, SheetSuggestedOrders, orders); err != nil {
		return err
	}
	if err := writeRecordSheet(f, SheetFullDetail, records); err != nil {
		return err
	}

	summaryHeader := []interface{}{"Fornitore", "Numero articoli", "Quantità totale da ordinare"}
	if err := f.SetSheetRow(SheetVendorSummary, "A1", &summaryHeader); err != nil {
		return err
	}
	for i, s := range SummarizeVendors(orders) {
		row := []interface{}{s.VendorName, s.NumSKU, s.TotalQtyToOrder}
		if err := f.SetSheetRow(SheetVendorSummary, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if err := writeRecordSheet(f, SheetNearReorder, NearReorder(records)); err != nil {
		return err
	}
	if err := writeRecordSheet(f, SheetExceptions, Exceptions(records)); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// invalidSheetChars are rejected by the XLSX format in sheet names.
var invalidSheetChars = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
)

// sheetNameFor turns a vendor name into a legal, unique sheet name. XLSX
// caps sheet names at 31 characters; truncation counts runes so accented
// vendor names never get cut inside a multi-byte character.
func sheetNameFor(vendor string, used map[string]bool) string {
	name := strings.TrimSpace(invalidSheetChars.Replace(vendor))
	if name == "" {
		name = "Senza_nome"
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	base := []rune(name)
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		name = string(trimmed) + suffix
	}
	used[name] = true
	return name
}

// WriteOrdersByVendorWorkbook exports one sheet per vendor with suggested
// orders, in the ordering selected by mode. Without any order to suggest,
// a single empty sheet is produced.
func WriteOrdersByVendorWorkbook(records []domain.ReorderRecord, path string, mode SortMode) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := SplitByVendor(records, mode)
	if len(sheets) == 0 {
		if err := f.SetSheetName("Sheet1", SheetNoOrders); err != nil {
			return err
		}
		return f.SaveAs(path)
	}

	used := make(map[string]bool, len(sheets))
	for i, vs := range sheets {
		name := sheetNameFor(vs.VendorName, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}
		if err := writeRecordSheet(f, name, vs.Records); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
