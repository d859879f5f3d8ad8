package report

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"profitlens/internal"
	"profitlens/internal/engine"
)

// ExportXLSX writes a reconciliation result as a workbook: one row per
// enriched order plus category, SKU, and overview sheets. Cells carry plain
// values; currency formatting is the consumer's responsibility.
func ExportXLSX(result *engine.Result, outputPath string) error {
	f := excelize.NewFile()
	_ = f.SetSheetName(f.GetSheetName(0), "Orders")
	writeOrders(f, "Orders", result.Orders)

	_, _ = f.NewSheet("Category Summary")
	writeSummaries(f, "Category Summary", "category", result.Categories)
	_, _ = f.NewSheet("SKU Summary")
	writeSummaries(f, "SKU Summary", "sku", result.Skus)
	_, _ = f.NewSheet("Overview")
	writeOverview(f, "Overview", result.Totals)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeOrders(f *excelize.File, sheet string, orders []internal.EnrichedOrder) {
	writeHeader(f, sheet, []string{
		"order_id", "sku", "product_name", "category", "outcome",
		"payment_count", "total_settlement", "purchase_cost", "return_charge",
		"profit", "has_valid_payment",
	})
	for i, order := range orders {
		set := cellSetter(f, sheet, i+2)
		set(1, order.OrderID)
		set(2, order.SKU)
		set(3, order.ProductName)
		set(4, order.Category)
		set(5, string(order.Outcome))
		set(6, order.PaymentCount)
		set(7, order.TotalSettlement.InexactFloat64())
		set(8, order.PurchaseCost.InexactFloat64())
		set(9, order.ReturnCharge.InexactFloat64())
		set(10, order.Profit.InexactFloat64())
		set(11, order.HasValidPayment)
	}
}

func writeSummaries(f *excelize.File, sheet, keyHeader string, summaries map[string]*internal.Summary) {
	writeHeader(f, sheet, []string{
		keyHeader, "orders", "delivered", "returned", "rto", "cancelled",
		"unknown", "payments", "revenue", "purchase", "return_charge",
		"profit", "return_rate_pct",
	})

	keys := make([]string, 0, len(summaries))
	for key := range summaries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		s := summaries[key]
		set := cellSetter(f, sheet, i+2)
		set(1, key)
		set(2, s.Orders)
		set(3, s.Delivered)
		set(4, s.Returned)
		set(5, s.RTO)
		set(6, s.Cancelled)
		set(7, s.Unknown)
		set(8, s.Payments)
		set(9, s.Revenue.InexactFloat64())
		set(10, s.Purchase.InexactFloat64())
		set(11, s.ReturnCharge.InexactFloat64())
		set(12, s.Profit.InexactFloat64())
		set(13, s.ReturnRate())
	}
}

func writeOverview(f *excelize.File, sheet string, totals internal.Totals) {
	rows := []struct {
		label string
		value any
	}{
		{"total_orders", totals.Orders},
		{"total_revenue", totals.Revenue.InexactFloat64()},
		{"total_profit", totals.Profit.InexactFloat64()},
		{"profit_margin_pct", totals.ProfitMarginPct},
		{"profit_per_piece", totals.ProfitPerPiece.InexactFloat64()},
		{"total_returned", totals.Returned},
		{"return_rate_pct", totals.ReturnRatePct},
		{"total_return_charges", totals.ReturnCharges.InexactFloat64()},
	}
	for i, row := range rows {
		set := cellSetter(f, sheet, i+1)
		set(1, row.label)
		set(2, row.value)
	}
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func cellSetter(f *excelize.File, sheet string, row int) func(col int, value any) {
	return func(col int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, value)
	}
}
