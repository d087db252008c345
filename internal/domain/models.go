package domain

import "time"

// Params are the tunable reorder parameters, all expressed in days.
type Params struct {
	LeadTimeDays int `json:"lead_time_days"`
	CoverageDays int `json:"coverage_days"`
	SafetyDays   int `json:"safety_days"`
}

// DefaultParams returns the stock parameters used when the caller does not
// override them: 10 days lead time, 45 days coverage, 15 days safety stock.
func DefaultParams() Params {
	return Params{LeadTimeDays: 10, CoverageDays: 45, SafetyDays: 15}
}

// ReorderRecord is one computed row per (product_code, vendor_name) pair.
// All aggregated inputs are retained alongside the derived fields so the
// exported detail sheet doubles as a full audit trail.
type ReorderRecord struct {
	ProductCode        string `json:"product_code"`
	ProductDescription string `json:"product_description"`
	VendorName         string `json:"vendor_name"`

	QtyShippedPeriod               float64 `json:"qty_shipped_period"`
	QtyAlreadyOrderedSuppliers     float64 `json:"qty_already_ordered_suppliers"`
	QtyCommittedOpenCustomerOrders float64 `json:"qty_committed_open_customer_orders"`
	StockOnHandTotal               float64 `json:"stock_on_hand_total"`
	AvgSalesLast6Months            float64 `json:"avg_sales_last_6_months"`
	PackSize                       float64 `json:"pack_size"`

	DailyDemand        float64 `json:"daily_demand"`
	SafetyStockQty     float64 `json:"safety_stock_qty"`
	ReorderPoint       float64 `json:"reorder_point"`
	TargetLevel        float64 `json:"target_level"`
	ProjectedAvailable float64 `json:"projected_available"`
	QtyToOrder         int     `json:"qty_to_order"`

	// CoverageDays is nil when daily demand is zero: "no demand" is kept
	// distinct from a real zero-coverage situation.
	CoverageDays   *float64 `json:"coverage_days"`
	RelevanceScore float64  `json:"relevance_score"`
}

// UploadedFile describes a file saved from an upload or picked from disk.
type UploadedFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

// AnalysisResult summarizes one completed reorder analysis run.
type AnalysisResult struct {
	ID              string            `json:"id"`
	Filename        string            `json:"filename"`
	PeriodStart     *time.Time        `json:"period_start"`
	PeriodEnd       *time.Time        `json:"period_end"`
	PeriodDays      int               `json:"period_days"`
	Params          Params            `json:"params"`
	TotalItems      int               `json:"total_items"`
	ItemsToOrder    int               `json:"items_to_order"`
	TotalQtyToOrder int               `json:"total_qty_to_order"`
	Exceptions      int               `json:"exceptions"`
	Artifacts       map[string]string `json:"artifacts"`
	CreatedAt       time.Time         `json:"created_at"`
}
