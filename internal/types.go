package internal

import (
	"math"

	"github.com/shopspring/decimal"
)

// RawRow is one parsed export row: column header mapped to cell text.
type RawRow map[string]string

// OrderRecord is one row from the marketplace orders export, immutable once
// normalized.
type OrderRecord struct {
	OrderID       string
	SKU           string
	ProductName   string
	CancelReason  string
	CustomerState string
	Raw           RawRow
}

// PaymentRecord is one settlement event. An order can have several of these
// across payment files (payment, later return charge), so rows are never
// de-duplicated.
type PaymentRecord struct {
	OrderID          string
	SettlementAmount decimal.Decimal
	Status           string
	OrderDate        string
	PaymentDate      string
	TransactionType  string
}

// Outcome is the canonical final disposition of an order.
type Outcome string

const (
	OutcomeDelivered      Outcome = "delivered"
	OutcomeCustomerReturn Outcome = "customer_return"
	OutcomeRTOReturn      Outcome = "rto_return"
	OutcomeCancelled      Outcome = "cancelled"
	OutcomeUnknown        Outcome = "unknown"
)

// EnrichedOrder is an order joined with its settlement rows and priced.
// Rebuilt fresh on every reconciliation run.
type EnrichedOrder struct {
	OrderRecord
	Category        string
	MatchedPayments []PaymentRecord
	PaymentCount    int
	TotalSettlement decimal.Decimal
	Outcome         Outcome
	HasValidPayment bool
	PurchaseCost    decimal.Decimal
	ReturnCharge    decimal.Decimal
	Profit          decimal.Decimal
}

// Summary is the fixed-shape rollup for one category or SKU key.
// Profit always equals Revenue - Purchase - ReturnCharge.
type Summary struct {
	Orders    int
	Delivered int
	Returned  int
	RTO       int
	Cancelled int
	Unknown   int
	Payments  int

	Revenue      decimal.Decimal
	Purchase     decimal.Decimal
	ReturnCharge decimal.Decimal
	Profit       decimal.Decimal
}

// ReturnRate is the customer-return share of this key's orders, one decimal.
func (s Summary) ReturnRate() float64 {
	return Percent(s.Returned, s.Orders)
}

// Totals are the run-level scalar rollups. ReturnCharges is the gross
// settlement over return and rto rows, reported separately from the charge
// that enters profit.
type Totals struct {
	Orders          int
	Returned        int
	Revenue         decimal.Decimal
	Profit          decimal.Decimal
	ReturnCharges   decimal.Decimal
	ProfitPerPiece  decimal.Decimal
	ReturnRatePct   float64
	ProfitMarginPct float64
}

// Percent renders part/whole as a percentage rounded to one decimal place,
// zero for an empty denominator.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
