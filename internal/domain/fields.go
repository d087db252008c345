package domain

// Canonical column names recognized in normalized input tables. Sources
// export these under many header variants (see internal/normalize); after
// normalization the rest of the system only ever sees these names.
const (
	FieldCustomerCode          = "customer_code"
	FieldProductCode           = "product_code"
	FieldProductDescription    = "product_description"
	FieldQtyShippedPeriod      = "qty_shipped_period"
	FieldQtyOrderedPeriod      = "qty_ordered_period"
	FieldQtyAlreadyOrdered     = "qty_already_ordered_suppliers"
	FieldQtyCommitted          = "qty_committed_open_customer_orders"
	FieldStockOnHandTotal      = "stock_on_hand_total"
	FieldStockRC               = "stock_rc"
	FieldStockDAP              = "stock_dap"
	FieldAvgSalesLast6Months   = "avg_sales_last_6_months"
	FieldSellingUnit           = "selling_unit"
	FieldPackSize              = "pack_size"
	FieldVendorName            = "vendor_name"
	FieldVendorCode            = "vendor_code"
	FieldLastPurchasePrice     = "last_purchase_price"
	FieldLastPurchasePriceDate = "last_purchase_price_date"
)
