package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"riordino/internal/domain"
)

// WriteVendorsTemplateCSV exports the vendor enrichment template: one line
// per distinct vendor with vendor_code, MOQ, lead time and currency columns
// to be completed by hand.
func WriteVendorsTemplateCSV(records []domain.ReorderRecord, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create vendors template %s: %w", path, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"vendor_name", "vendor_code", "moq", "default_lead_time", "currency"}); err != nil {
		return err
	}
	for _, row := range VendorsTemplate(records) {
		record := []string{
			row.VendorName,
			row.VendorCode,
			strconv.Itoa(row.MOQ),
			strconv.Itoa(row.DefaultLeadTime),
			row.Currency,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
