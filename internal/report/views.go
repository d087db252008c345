// Package report slices and exports the reorder computation results: the
// analysis workbook with its summary sheets, the per-vendor order workbook
// and the vendor enrichment template.
package report

import (
	"sort"

	"riordino/internal/domain"
)

// SortMode selects the row and sheet ordering of the per-vendor workbook.
type SortMode string

const (
	// SortAlphabetical orders vendors and rows by product code.
	SortAlphabetical SortMode = "alphabetical"
	// SortRelevance orders by relevance score, most urgent first.
	SortRelevance SortMode = "relevance"
)

// OrdersOnly keeps the records with a suggested order quantity.
func OrdersOnly(records []domain.ReorderRecord) []domain.ReorderRecord {
	var out []domain.ReorderRecord
	for _, r := range records {
		if r.QtyToOrder > 0 {
			out = append(out, r)
		}
	}
	return out
}

// NearReorder keeps the records whose projected availability is below the
// reorder point. This watchlist threshold is deliberately softer than the
// order trigger, which fires on the gap to the target level.
func NearReorder(records []domain.ReorderRecord) []domain.ReorderRecord {
	var out []domain.ReorderRecord
	for _, r := range records {
		if r.ProjectedAvailable < r.ReorderPoint {
			out = append(out, r)
		}
	}
	return out
}

// Exceptions keeps the data-quality anomalies: zero demand or an unusable
// pack size. These rows are surfaced here instead of failing the run.
func Exceptions(records []domain.ReorderRecord) []domain.ReorderRecord {
	var out []domain.ReorderRecord
	for _, r := range records {
		if r.DailyDemand <= 0 || r.PackSize <= 0 {
			out = append(out, r)
		}
	}
	return out
}

// VendorSummary aggregates suggested orders for one vendor.
type VendorSummary struct {
	VendorName      string `json:"vendor_name"`
	NumSKU          int    `json:"num_sku"`
	TotalQtyToOrder int    `json:"total_qty_to_order"`
}

// SummarizeVendors counts items and sums quantities per vendor over the
// suggested orders, sorted by vendor name.
func SummarizeVendors(orders []domain.ReorderRecord) []VendorSummary {
	byVendor := make(map[string]*VendorSummary)
	var names []string
	for _, r := range orders {
		s, ok := byVendor[r.VendorName]
		if !ok {
			s = &VendorSummary{VendorName: r.VendorName}
			byVendor[r.VendorName] = s
			names = append(names, r.VendorName)
		}
		s.NumSKU++
		s.TotalQtyToOrder += r.QtyToOrder
	}
	sort.Strings(names)
	out := make([]VendorSummary, 0, len(names))
	for _, n := range names {
		out = append(out, *byVendor[n])
	}
	return out
}

// VendorSheet is the suggested orders of one vendor, already sorted for
// presentation.
type VendorSheet struct {
	VendorName string
	Records    []domain.ReorderRecord
}

// SplitByVendor groups the suggested orders into per-vendor sheets. With
// SortRelevance, vendors are ordered by their most urgent item and rows by
// descending score with product code as tie-break; otherwise everything is
// alphabetical by product code.
func SplitByVendor(records []domain.ReorderRecord, mode SortMode) []VendorSheet {
	orders := OrdersOnly(records)

	byVendor := make(map[string][]domain.ReorderRecord)
	var vendors []string
	for _, r := range orders {
		if _, ok := byVendor[r.VendorName]; !ok {
			vendors = append(vendors, r.VendorName)
		}
		byVendor[r.VendorName] = append(byVendor[r.VendorName], r)
	}

	if mode == SortRelevance {
		maxScore := make(map[string]float64, len(vendors))
		for v, recs := range byVendor {
			top := 0.0
			for _, r := range recs {
				if r.RelevanceScore > top {
					top = r.RelevanceScore
				}
			}
			maxScore[v] = top
		}
		sort.SliceStable(vendors, func(i, j int) bool {
			return maxScore[vendors[i]] > maxScore[vendors[j]]
		})
	} else {
		sort.Strings(vendors)
	}

	sheets := make([]VendorSheet, 0, len(vendors))
	for _, v := range vendors {
		recs := byVendor[v]
		if mode == SortRelevance {
			sort.SliceStable(recs, func(i, j int) bool {
				if recs[i].RelevanceScore != recs[j].RelevanceScore {
					return recs[i].RelevanceScore > recs[j].RelevanceScore
				}
				return recs[i].ProductCode < recs[j].ProductCode
			})
		} else {
			sort.SliceStable(recs, func(i, j int) bool {
				return recs[i].ProductCode < recs[j].ProductCode
			})
		}
		sheets = append(sheets, VendorSheet{VendorName: v, Records: recs})
	}
	return sheets
}

// VendorTemplateRow is one line of the vendor enrichment template, meant to
// be filled in by hand with supplier master data.
type VendorTemplateRow struct {
	VendorName      string
	VendorCode      string
	MOQ             int
	DefaultLeadTime int
	Currency        string
}

// VendorsTemplate lists the distinct vendor names, sorted, with the
// columns to enrich preset to their defaults.
func VendorsTemplate(records []domain.ReorderRecord) []VendorTemplateRow {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.VendorName] {
			seen[r.VendorName] = true
			names = append(names, r.VendorName)
		}
	}
	sort.Strings(names)
	out := make([]VendorTemplateRow, 0, len(names))
	for _, n := range names {
		out = append(out, VendorTemplateRow{
			VendorName:      n,
			MOQ:             0,
			DefaultLeadTime: 10,
			Currency:        "EUR",
		})
	}
	return out
}
