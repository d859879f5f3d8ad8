package engine

import "github.com/shopspring/decimal"

// CostTable maps SKU to the seller-entered unit purchase cost. It is owned by
// the surrounding session and only read during a reconciliation pass; a
// mutation invalidates every derived structure, which the engine handles by
// recomputing in full rather than patching.
type CostTable struct {
	costs map[string]decimal.Decimal
}

func NewCostTable() *CostTable {
	return &CostTable{costs: map[string]decimal.Decimal{}}
}

// Set records the cost for one SKU. Negative inputs clamp to zero to keep the
// non-negative invariant at the mutation boundary.
func (t *CostTable) Set(sku string, cost decimal.Decimal) {
	if cost.IsNegative() {
		cost = decimal.Zero
	}
	t.costs[sku] = cost
}

// SetAll applies one default cost to every listed SKU. A later Set always
// wins for its key, so bulk-then-override works in call order.
func (t *CostTable) SetAll(skus []string, cost decimal.Decimal) {
	for _, sku := range skus {
		t.Set(sku, cost)
	}
}

// Lookup never fails: an unknown SKU costs zero.
func (t *CostTable) Lookup(sku string) decimal.Decimal {
	return t.costs[sku]
}

func (t *CostTable) Len() int {
	return len(t.costs)
}

// Snapshot copies the table so a pass never observes a mutation partway
// through.
func (t *CostTable) Snapshot() *CostTable {
	copied := make(map[string]decimal.Decimal, len(t.costs))
	for sku, cost := range t.costs {
		copied[sku] = cost
	}
	return &CostTable{costs: copied}
}
