package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"profitlens/internal"
	"profitlens/internal/config"
	"profitlens/internal/util"
)

// Categorizer maps a product name to a reporting category via ordered
// substring rules.
type Categorizer struct {
	rules    []config.CategoryRule
	fallback string
}

func NewCategorizer(rules []config.CategoryRule, fallback string) *Categorizer {
	return &Categorizer{rules: rules, fallback: fallback}
}

func (c *Categorizer) Category(productName string) string {
	name := strings.ToLower(productName)
	for _, rule := range c.rules {
		if strings.Contains(name, rule.Contains) {
			return rule.Category
		}
	}
	return c.fallback
}

type Aggregation struct {
	Categories map[string]*internal.Summary
	Skus       map[string]*internal.Summary
	Totals     internal.Totals
}

// Aggregate folds enriched orders into category and SKU rollups in one linear
// pass. Every total increments exactly once per order, so the input sequence
// cannot change the result.
func Aggregate(orders []internal.EnrichedOrder) *Aggregation {
	agg := &Aggregation{
		Categories: map[string]*internal.Summary{},
		Skus:       map[string]*internal.Summary{},
	}
	for _, order := range orders {
		agg.fold(order)
	}
	agg.finishTotals()
	return agg
}

func (a *Aggregation) fold(order internal.EnrichedOrder) {
	skuKey := order.SKU
	if strings.TrimSpace(skuKey) == "" {
		skuKey = "other"
	}

	for _, s := range []*internal.Summary{
		summaryFor(a.Categories, order.Category),
		summaryFor(a.Skus, skuKey),
	} {
		s.Orders++
		s.Payments += order.PaymentCount
		switch order.Outcome {
		case internal.OutcomeDelivered:
			s.Delivered++
		case internal.OutcomeCustomerReturn:
			s.Returned++
		case internal.OutcomeRTOReturn:
			s.RTO++
		case internal.OutcomeCancelled:
			s.Cancelled++
		default:
			s.Unknown++
		}
		s.Revenue = s.Revenue.Add(order.TotalSettlement)
		s.Purchase = s.Purchase.Add(order.PurchaseCost)
		s.ReturnCharge = s.ReturnCharge.Add(order.ReturnCharge)
		s.Profit = s.Profit.Add(order.Profit)
	}

	t := &a.Totals
	t.Orders++
	t.Revenue = t.Revenue.Add(order.TotalSettlement)
	t.Profit = t.Profit.Add(order.Profit)
	if order.Outcome == internal.OutcomeCustomerReturn {
		t.Returned++
	}
	t.ReturnCharges = t.ReturnCharges.Add(grossReturnCharge(order.MatchedPayments))
}

func (a *Aggregation) finishTotals() {
	t := &a.Totals
	t.ReturnRatePct = internal.Percent(t.Returned, t.Orders)
	if t.Orders > 0 {
		t.ProfitPerPiece = t.Profit.Div(decimal.NewFromInt(int64(t.Orders))).Round(2)
	}
	if t.Revenue.IsPositive() {
		margin, _ := t.Profit.Div(t.Revenue).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		t.ProfitMarginPct = margin
	}
}

// grossReturnCharge sums settlement amounts over return and rto rows. This
// feeds the informational "return charges" rollup only; the charge that
// enters profit comes from ComputeProfit and is tracked separately.
func grossReturnCharge(payments []internal.PaymentRecord) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		switch util.FoldStatus(p.Status) {
		case "return", "returned", "rto":
			total = total.Add(p.SettlementAmount)
		}
	}
	return total
}

func summaryFor(m map[string]*internal.Summary, key string) *internal.Summary {
	s, ok := m[key]
	if !ok {
		s = &internal.Summary{}
		m[key] = s
	}
	return s
}
