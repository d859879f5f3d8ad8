package engine

import (
	"errors"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"profitlens/internal"
	"profitlens/internal/config"
)

// ErrMissingInput is returned when reconciliation is requested before both
// the order and payment collections are present. It is the only user-visible
// failure: once both inputs exist, a run always completes.
var ErrMissingInput = errors.New("both order and payment rows are required")

type Options struct {
	ReturnMode      ReturnAccountingMode
	CategoryRules   []config.CategoryRule
	DefaultCategory string
}

func (o Options) withDefaults() Options {
	if o.ReturnMode == "" {
		o.ReturnMode = SubtractReturnAmount
	}
	if len(o.CategoryRules) == 0 {
		o.CategoryRules = config.DefaultCategoryRules()
	}
	if o.DefaultCategory == "" {
		o.DefaultCategory = "Other"
	}
	return o
}

type Result struct {
	Orders     []internal.EnrichedOrder
	Categories map[string]*internal.Summary
	Skus       map[string]*internal.Summary
	Totals     internal.Totals
}

// Reconcile matches orders to settlement rows, classifies and prices each
// order, and folds the lot into summaries. The cost table is snapshotted up
// front so an edit can never split a pass; given the same inputs and costs,
// the result is identical run to run.
func Reconcile(orders []internal.OrderRecord, payments []internal.PaymentRecord, costs *CostTable, opts Options) (*Result, error) {
	if len(orders) == 0 || len(payments) == 0 {
		return nil, ErrMissingInput
	}
	if costs == nil {
		costs = NewCostTable()
	}
	opts = opts.withDefaults()

	snapshot := costs.Snapshot()
	categorizer := NewCategorizer(opts.CategoryRules, opts.DefaultCategory)
	index := BuildPaymentIndex(payments)

	enriched := make([]internal.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		matched := index.Match(order.OrderID)

		total := decimal.Zero
		for _, p := range matched {
			total = total.Add(p.SettlementAmount)
		}

		outcome := Classify(order, matched)
		breakdown := ComputeProfit(outcome, total, snapshot.Lookup(order.SKU), opts.ReturnMode)

		enriched = append(enriched, internal.EnrichedOrder{
			OrderRecord:     order,
			Category:        categorizer.Category(order.ProductName),
			MatchedPayments: matched,
			PaymentCount:    len(matched),
			TotalSettlement: total,
			Outcome:         outcome,
			HasValidPayment: outcome == internal.OutcomeDelivered,
			PurchaseCost:    breakdown.PurchaseCost,
			ReturnCharge:    breakdown.ReturnCharge,
			Profit:          breakdown.Profit,
		})
	}

	agg := Aggregate(enriched)
	log.Infof("[Reconcile] orders=%d payments=%d returned=%d revenue=%s profit=%s",
		len(orders), index.Rows, agg.Totals.Returned, agg.Totals.Revenue.String(), agg.Totals.Profit.String())

	return &Result{
		Orders:     enriched,
		Categories: agg.Categories,
		Skus:       agg.Skus,
		Totals:     agg.Totals,
	}, nil
}
