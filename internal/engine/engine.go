// Package engine computes supplier reorder quantities from a normalized
// sales/stock table.
//
// Daily demand is the higher of the observed daily shipment rate over the
// analysis period and the 6-month monthly sales average divided by 30, a
// floor against underestimating demand from a short or quiet window. The
// reorder point is demand over the lead time plus safety stock; an order is
// suggested whenever projected availability falls short of the target
// level (demand over lead time plus coverage, plus safety stock), and the
// suggested quantity closes the gap to the target, rounded up to a whole
// multiple of the pack size.
package engine

import (
	"errors"
	"math"
	"time"

	"riordino/internal/domain"
	"riordino/internal/period"
)

// ErrMissingProductCode is returned when the input table lacks a
// product_code column even after header normalization. It is the only
// input the engine refuses to process.
var ErrMissingProductCode = errors.New("input table has no product_code column")

// groupKey identifies one output row. Empty vendor name is a valid key,
// distinct from any named vendor.
type groupKey struct {
	ProductCode string
	VendorName  string
}

type groupAccum struct {
	QtyShippedPeriod               float64
	QtyAlreadyOrderedSuppliers     float64
	QtyCommittedOpenCustomerOrders float64
	StockOnHandTotal               float64
	AvgSalesLast6Months            float64
	PackSize                       float64
	ProductDescription             string
}

// ComputeReorder derives one ReorderRecord per (product_code, vendor_name)
// pair. Missing optional columns and unparseable cells degrade to zero
// defaults; records are emitted in first-encounter order of the group key.
func ComputeReorder(t *domain.Table, startDate, endDate *time.Time, p domain.Params) ([]domain.ReorderRecord, error) {
	if !t.HasColumn(domain.FieldProductCode) {
		return nil, ErrMissingProductCode
	}

	rows := sanitize(t)
	periodDays := float64(period.Days(startDate, endDate))

	groups := make(map[groupKey]*groupAccum)
	order := make([]groupKey, 0, len(rows))
	for _, r := range rows {
		key := groupKey{ProductCode: r.ProductCode, VendorName: r.VendorName}
		g, ok := groups[key]
		if !ok {
			g = &groupAccum{}
			groups[key] = g
			order = append(order, key)
		}
		// Shipments and open customer orders accumulate per row; the open
		// supplier order quantity is a snapshot repeated on every row of
		// the same item/vendor, so summing it would double count. Stock,
		// 6-month average and pack size are expected constant per item;
		// max guards against duplicate or partial rows.
		g.QtyShippedPeriod += r.QtyShippedPeriod
		g.QtyCommittedOpenCustomerOrders += r.QtyCommittedOpenCustomerOrders
		g.QtyAlreadyOrderedSuppliers = math.Max(g.QtyAlreadyOrderedSuppliers, r.QtyAlreadyOrderedSuppliers)
		g.StockOnHandTotal = math.Max(g.StockOnHandTotal, r.StockOnHandTotal)
		g.AvgSalesLast6Months = math.Max(g.AvgSalesLast6Months, r.AvgSalesLast6Months)
		g.PackSize = math.Max(g.PackSize, r.PackSize)
		if g.ProductDescription == "" {
			g.ProductDescription = r.ProductDescription
		}
	}

	records := make([]domain.ReorderRecord, 0, len(order))
	for _, key := range order {
		g := groups[key]

		shipmentsDaily := g.QtyShippedPeriod / periodDays
		avgMonthDaily := g.AvgSalesLast6Months / 30.0
		dailyDemand := avgMonthDaily
		if shipmentsDaily > avgMonthDaily {
			dailyDemand = shipmentsDaily
		}

		safetyStock := dailyDemand * float64(p.SafetyDays)
		reorderPoint := dailyDemand*float64(p.LeadTimeDays) + safetyStock
		targetLevel := dailyDemand*float64(p.LeadTimeDays+p.CoverageDays) + safetyStock

		projected := g.StockOnHandTotal - g.QtyCommittedOpenCustomerOrders + g.QtyAlreadyOrderedSuppliers

		rawNeed := targetLevel - projected
		if rawNeed < 0 {
			rawNeed = 0
		}

		var coverageDays *float64
		if dailyDemand > 0 {
			v := projected / dailyDemand
			coverageDays = &v
		}

		records = append(records, domain.ReorderRecord{
			ProductCode:        key.ProductCode,
			ProductDescription: g.ProductDescription,
			VendorName:         key.VendorName,

			QtyShippedPeriod:               g.QtyShippedPeriod,
			QtyAlreadyOrderedSuppliers:     g.QtyAlreadyOrderedSuppliers,
			QtyCommittedOpenCustomerOrders: g.QtyCommittedOpenCustomerOrders,
			StockOnHandTotal:               g.StockOnHandTotal,
			AvgSalesLast6Months:            g.AvgSalesLast6Months,
			PackSize:                       g.PackSize,

			DailyDemand:        dailyDemand,
			SafetyStockQty:     safetyStock,
			ReorderPoint:       reorderPoint,
			TargetLevel:        targetLevel,
			ProjectedAvailable: projected,
			QtyToOrder:         applyPackSize(rawNeed, g.PackSize),
			CoverageDays:       coverageDays,
			RelevanceScore:     relevanceScore(dailyDemand, coverageDays),
		})
	}

	return records, nil
}

// applyPackSize rounds the raw need up to a whole multiple of the pack
// size, or to the next integer when no usable pack size is known.
func applyPackSize(qty, pack float64) int {
	if pack <= 0 || math.IsNaN(pack) {
		return int(math.Ceil(qty))
	}
	return int(math.Ceil(qty/pack) * pack)
}

// relevanceScore ranks urgency for presentation: low coverage and high
// demand score higher. Unknown or negative coverage counts as zero; the +1
// keeps the score finite at zero coverage.
func relevanceScore(dailyDemand float64, coverageDays *float64) float64 {
	cov := 0.0
	if coverageDays != nil && *coverageDays > 0 {
		cov = *coverageDays
	}
	return dailyDemand / (cov + 1)
}
