package engine

import (
	"testing"

	"profitlens/internal"
)

func payment(orderID, status string) internal.PaymentRecord {
	return internal.PaymentRecord{OrderID: orderID, Status: status}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		reason   string
		statuses []string
		want     internal.Outcome
	}{
		{name: "delivered", statuses: []string{"Delivered"}, want: internal.OutcomeDelivered},
		{name: "any non-empty status settles", statuses: []string{"Shipped"}, want: internal.OutcomeDelivered},
		{name: "return overrides delivered", statuses: []string{"Delivered", "Return"}, want: internal.OutcomeCustomerReturn},
		{name: "return overrides regardless of order", statuses: []string{"Return", "Delivered"}, want: internal.OutcomeCustomerReturn},
		{name: "returned spelling", statuses: []string{"RETURNED "}, want: internal.OutcomeCustomerReturn},
		{name: "rto", statuses: []string{"RTO"}, want: internal.OutcomeRTOReturn},
		{name: "return beats rto", statuses: []string{"rto", "return"}, want: internal.OutcomeCustomerReturn},
		{name: "cancelled from credit reason", reason: "Order Cancelled", statuses: nil, want: internal.OutcomeCancelled},
		{name: "cancel reason outranks delivered status", reason: "Cancelled", statuses: []string{"Delivered"}, want: internal.OutcomeCancelled},
		{name: "no payments", statuses: nil, want: internal.OutcomeUnknown},
		{name: "blank statuses", statuses: []string{"", "  "}, want: internal.OutcomeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payments := make([]internal.PaymentRecord, 0, len(tc.statuses))
			for _, status := range tc.statuses {
				payments = append(payments, payment("A1", status))
			}
			order := internal.OrderRecord{OrderID: "A1", CancelReason: tc.reason}
			if got := Classify(order, payments); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestClassifyRTOWithCancelReason(t *testing.T) {
	// rto on a payment row outranks an order-level cancellation note.
	order := internal.OrderRecord{OrderID: "A1", CancelReason: "Cancelled"}
	got := Classify(order, []internal.PaymentRecord{payment("A1", "rto")})
	if got != internal.OutcomeRTOReturn {
		t.Fatalf("got %s", got)
	}
}
