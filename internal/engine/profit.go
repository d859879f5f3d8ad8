package engine

import (
	"github.com/shopspring/decimal"

	"profitlens/internal"
	"profitlens/internal/util"
)

// ReturnAccountingMode selects which profit definition a run uses. The
// dashboard this replaces grew two of them implicitly; here the choice is an
// explicit option.
type ReturnAccountingMode string

const (
	// ExcludeReturns ignores return charges: profit = settlement - purchase.
	ExcludeReturns ReturnAccountingMode = "exclude"
	// SubtractReturnAmount treats the settlement on a customer-return order
	// as a charge: profit = settlement - purchase - returnCharge.
	SubtractReturnAmount ReturnAccountingMode = "subtract"
)

// ModeFromString maps a config value to a mode, defaulting to
// SubtractReturnAmount.
func ModeFromString(s string) ReturnAccountingMode {
	if util.FoldStatus(s) == string(ExcludeReturns) {
		return ExcludeReturns
	}
	return SubtractReturnAmount
}

type ProfitBreakdown struct {
	PurchaseCost decimal.Decimal
	ReturnCharge decimal.Decimal
	Profit       decimal.Decimal
}

// ComputeProfit prices one classified order. Purchase cost is charged only
// when the unit was actually kept by the customer.
func ComputeProfit(outcome internal.Outcome, totalSettlement, cost decimal.Decimal, mode ReturnAccountingMode) ProfitBreakdown {
	purchase := decimal.Zero
	if outcome == internal.OutcomeDelivered {
		purchase = cost
	}

	returnCharge := decimal.Zero
	if mode == SubtractReturnAmount && outcome == internal.OutcomeCustomerReturn {
		returnCharge = totalSettlement
	}

	return ProfitBreakdown{
		PurchaseCost: purchase,
		ReturnCharge: returnCharge,
		Profit:       totalSettlement.Sub(purchase).Sub(returnCharge),
	}
}
