package engine

import (
	"math"
	"strconv"
	"strings"

	"riordino/internal/domain"
)

// itemRow is one fully-typed input row after defaulting and coercion. The
// formulas downstream never have to deal with missing columns or bad cells.
type itemRow struct {
	ProductCode        string
	VendorName         string
	ProductDescription string

	QtyShippedPeriod               float64
	QtyOrderedPeriod               float64
	QtyAlreadyOrderedSuppliers     float64
	QtyCommittedOpenCustomerOrders float64
	StockOnHandTotal               float64
	AvgSalesLast6Months            float64
	PackSize                       float64
}

// toFloat parses a cell into a number. Empty, unparseable and NaN values
// all become 0; bad data is never an error at this stage.
func toFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// sanitize turns the loosely-typed table into typed rows, filling absent
// columns with zero (numeric) or empty (text) defaults.
func sanitize(t *domain.Table) []itemRow {
	rows := make([]itemRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, itemRow{
			ProductCode:        r[domain.FieldProductCode],
			VendorName:         r[domain.FieldVendorName],
			ProductDescription: r[domain.FieldProductDescription],

			QtyShippedPeriod:               toFloat(r[domain.FieldQtyShippedPeriod]),
			QtyOrderedPeriod:               toFloat(r[domain.FieldQtyOrderedPeriod]),
			QtyAlreadyOrderedSuppliers:     toFloat(r[domain.FieldQtyAlreadyOrdered]),
			QtyCommittedOpenCustomerOrders: toFloat(r[domain.FieldQtyCommitted]),
			StockOnHandTotal:               toFloat(r[domain.FieldStockOnHandTotal]),
			AvgSalesLast6Months:            toFloat(r[domain.FieldAvgSalesLast6Months]),
			PackSize:                       toFloat(r[domain.FieldPackSize]),
		})
	}
	return rows
}
