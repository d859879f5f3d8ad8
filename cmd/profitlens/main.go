package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"profitlens/internal"
	"profitlens/internal/analytics"
	"profitlens/internal/config"
	"profitlens/internal/engine"
	"profitlens/internal/ingest"
	"profitlens/internal/report"
	"profitlens/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	readOpts := ingest.Options{DataSheet: cfg.XLSXDataSheet, HeaderRow: cfg.XLSXHeaderRow}

	switch cmd := os.Args[1]; cmd {
	case "reconcile":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		ordersPath := fs.String("orders", "", "orders export (csv or xlsx)")
		paymentsArg := fs.String("payments", "", "comma-separated payment exports")
		costsPath := fs.String("costs", "", "optional sku,cost csv")
		defaultCost := fs.String("default-cost", "", "bulk purchase cost applied to every SKU first")
		out := fs.String("out", "", "output xlsx path")
		mode := fs.String("mode", cfg.ReturnMode, "return accounting: subtract|exclude")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*ordersPath) == "" || strings.TrimSpace(*paymentsArg) == "" {
			must(fmt.Errorf("--orders and --payments are required"))
		}

		orderRows, err := ingest.ReadRows(*ordersPath, readOpts)
		must(err)
		paymentRows, err := ingest.LoadAll(strings.Split(*paymentsArg, ","), readOpts)
		must(err)

		orders := engine.NormalizeOrders(orderRows)
		payments := engine.NormalizePayments(paymentRows)

		costs := engine.NewCostTable()
		if strings.TrimSpace(*defaultCost) != "" {
			bulk, err := decimal.NewFromString(strings.TrimSpace(*defaultCost))
			must(err)
			costs.SetAll(skuList(orders), bulk)
		}
		if strings.TrimSpace(*costsPath) != "" {
			must(loadCosts(costs, *costsPath, readOpts))
		}

		result, err := engine.Reconcile(orders, payments, costs, engine.Options{
			ReturnMode:      engine.ModeFromString(*mode),
			CategoryRules:   cfg.CategoryRules,
			DefaultCategory: cfg.DefaultCategory,
		})
		must(err)

		printTotals(result.Totals)

		output := strings.TrimSpace(*out)
		if output == "" {
			output = filepath.Join(cfg.OutputDir, "report.xlsx")
		}
		must(report.ExportXLSX(result, output))
		fmt.Printf("report written to %s\n", output)
	case "analyze":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		ordersPath := fs.String("orders", "", "orders export (csv or xlsx)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*ordersPath) == "" {
			must(fmt.Errorf("--orders is required"))
		}

		rows, err := ingest.ReadRows(*ordersPath, readOpts)
		must(err)
		rep := analytics.Summarize(engine.NormalizeOrders(rows))
		printDispatch("sku", rep.BySKU)
		printDispatch("state", rep.ByState)
	default:
		usage()
		os.Exit(1)
	}
}

// loadCosts reads a sku,cost csv into the table. File rows override any
// earlier bulk default per key.
func loadCosts(costs *engine.CostTable, path string, opts ingest.Options) error {
	rows, err := ingest.ReadRows(path, opts)
	if err != nil {
		return err
	}
	for _, row := range rows {
		sku, cost := "", ""
		for key, value := range row {
			switch util.FoldKey(key) {
			case "sku":
				sku = strings.TrimSpace(value)
			case "cost", "purchase cost":
				cost = value
			}
		}
		if sku == "" {
			continue
		}
		costs.Set(sku, util.ParseAmount(cost))
	}
	return nil
}

func skuList(orders []internal.OrderRecord) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, order := range orders {
		if _, ok := seen[order.SKU]; ok {
			continue
		}
		seen[order.SKU] = struct{}{}
		out = append(out, order.SKU)
	}
	return out
}

func printTotals(t internal.Totals) {
	fmt.Printf("orders=%d revenue=%s profit=%s margin=%.1f%% profit_per_piece=%s\n",
		t.Orders, t.Revenue.StringFixed(2), t.Profit.StringFixed(2), t.ProfitMarginPct, t.ProfitPerPiece.StringFixed(2))
	fmt.Printf("returned=%d return_rate=%.1f%% return_charges=%s\n",
		t.Returned, t.ReturnRatePct, t.ReturnCharges.StringFixed(2))
}

func printDispatch(label string, summaries map[string]*analytics.DispatchSummary) {
	fmt.Printf("%-30s %9s %9s %9s\n", label, "delivered", "failed", "success%")
	for _, key := range analytics.SortedKeys(summaries) {
		s := summaries[key]
		fmt.Printf("%-30s %9d %9d %8.1f%%\n", key, s.Delivered, s.Failed, s.SuccessRate())
	}
}

func usage() {
	fmt.Println("usage: profitlens <command>")
	fmt.Println("commands:")
	fmt.Println("  reconcile --orders=orders.xlsx --payments=a.xlsx,b.csv [--costs=costs.csv] [--default-cost=150] [--mode=subtract|exclude] [--out=report.xlsx]")
	fmt.Println("  analyze   --orders=orders.csv")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
