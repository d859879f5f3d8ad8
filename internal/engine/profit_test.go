package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"profitlens/internal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeProfitDelivered(t *testing.T) {
	got := ComputeProfit(internal.OutcomeDelivered, d(500), d(150), SubtractReturnAmount)
	if !got.Profit.Equal(d(350)) {
		t.Fatalf("profit: %s", got.Profit)
	}
	if !got.PurchaseCost.Equal(d(150)) || !got.ReturnCharge.IsZero() {
		t.Fatalf("breakdown: %+v", got)
	}
}

func TestComputeProfitNonDeliveredSkipsCost(t *testing.T) {
	for _, outcome := range []internal.Outcome{
		internal.OutcomeCustomerReturn,
		internal.OutcomeRTOReturn,
		internal.OutcomeCancelled,
		internal.OutcomeUnknown,
	} {
		got := ComputeProfit(outcome, decimal.Zero, d(150), SubtractReturnAmount)
		if !got.PurchaseCost.IsZero() {
			t.Fatalf("%s: cost charged without delivery", outcome)
		}
	}
}

func TestComputeProfitReturnModes(t *testing.T) {
	// Customer return with a residual settlement of -80 after the charge-back.
	settlement := d(-80)

	subtract := ComputeProfit(internal.OutcomeCustomerReturn, settlement, d(150), SubtractReturnAmount)
	if !subtract.ReturnCharge.Equal(settlement) {
		t.Fatalf("return charge: %s", subtract.ReturnCharge)
	}
	if !subtract.Profit.Equal(settlement.Sub(settlement)) {
		t.Fatalf("subtract profit: %s", subtract.Profit)
	}

	exclude := ComputeProfit(internal.OutcomeCustomerReturn, settlement, d(150), ExcludeReturns)
	if !exclude.ReturnCharge.IsZero() {
		t.Fatalf("exclude mode charged a return: %s", exclude.ReturnCharge)
	}
	if !exclude.Profit.Equal(settlement) {
		t.Fatalf("exclude profit: %s", exclude.Profit)
	}
}

func TestComputeProfitIdentity(t *testing.T) {
	cases := []struct {
		outcome    internal.Outcome
		settlement decimal.Decimal
		cost       decimal.Decimal
		mode       ReturnAccountingMode
	}{
		{internal.OutcomeDelivered, d(500), d(150), SubtractReturnAmount},
		{internal.OutcomeCustomerReturn, d(-120), d(150), SubtractReturnAmount},
		{internal.OutcomeCustomerReturn, d(-120), d(150), ExcludeReturns},
		{internal.OutcomeUnknown, decimal.Zero, d(150), SubtractReturnAmount},
	}
	for _, tc := range cases {
		got := ComputeProfit(tc.outcome, tc.settlement, tc.cost, tc.mode)
		want := tc.settlement.Sub(got.PurchaseCost).Sub(got.ReturnCharge)
		if !got.Profit.Equal(want) {
			t.Fatalf("%s: profit %s != %s", tc.outcome, got.Profit, want)
		}
	}
}

func TestModeFromString(t *testing.T) {
	if ModeFromString("exclude") != ExcludeReturns {
		t.Fatalf("exclude not recognized")
	}
	if ModeFromString("") != SubtractReturnAmount || ModeFromString("bogus") != SubtractReturnAmount {
		t.Fatalf("default must be subtract")
	}
}
