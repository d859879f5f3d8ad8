package engine

import "profitlens/internal"

// PaymentIndex groups settlement rows by order id, preserving file order
// within each group. Built once over the merged payment collection so
// matching stays linear in orders+payments.
type PaymentIndex struct {
	ByOrderID map[string][]internal.PaymentRecord
	Rows      int
}

func BuildPaymentIndex(payments []internal.PaymentRecord) *PaymentIndex {
	idx := &PaymentIndex{
		ByOrderID: map[string][]internal.PaymentRecord{},
		Rows:      len(payments),
	}
	for _, p := range payments {
		idx.ByOrderID[p.OrderID] = append(idx.ByOrderID[p.OrderID], p)
	}
	return idx
}

// Match is exact string equality on the order id. Zero matches is a valid
// result, not an error.
func (idx *PaymentIndex) Match(orderID string) []internal.PaymentRecord {
	return idx.ByOrderID[orderID]
}
