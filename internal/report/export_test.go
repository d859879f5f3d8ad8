package report

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"profitlens/internal"
	"profitlens/internal/engine"
)

func TestExportXLSX(t *testing.T) {
	costs := engine.NewCostTable()
	costs.Set("X", decimal.NewFromInt(150))

	result, err := engine.Reconcile(
		[]internal.OrderRecord{{OrderID: "A1", SKU: "X", ProductName: "Red Saree"}},
		[]internal.PaymentRecord{{OrderID: "A1", Status: "Delivered", SettlementAmount: decimal.NewFromInt(500)}},
		costs, engine.Options{},
	)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "report.xlsx")
	if err := ExportXLSX(result, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, sheet := range []string{"Orders", "Category Summary", "SKU Summary", "Overview"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("missing sheet %s", sheet)
		}
	}

	orderID, err := f.GetCellValue("Orders", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if orderID != "A1" {
		t.Fatalf("order cell: %q", orderID)
	}

	profit, err := f.GetCellValue("SKU Summary", "L2")
	if err != nil {
		t.Fatal(err)
	}
	if profit != "350" {
		t.Fatalf("sku profit cell: %q", profit)
	}
}
