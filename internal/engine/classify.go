package engine

import (
	"strings"

	"profitlens/internal"
	"profitlens/internal/util"
)

// Classify folds an order's matched payment statuses and its order-level
// cancellation reason into exactly one outcome. Priority is fixed: a return
// signal always overrides an earlier delivered signal, because the return is
// the financially final state; rto ranks next, then cancellation, then any
// other non-empty status counts as settled.
func Classify(order internal.OrderRecord, payments []internal.PaymentRecord) internal.Outcome {
	anyReturn, anyRTO, anyStatus := false, false, false
	for _, p := range payments {
		switch status := util.FoldStatus(p.Status); {
		case status == "return" || status == "returned":
			anyReturn = true
		case status == "rto":
			anyRTO = true
		case status != "":
			anyStatus = true
		}
	}

	switch {
	case anyReturn:
		return internal.OutcomeCustomerReturn
	case anyRTO:
		return internal.OutcomeRTOReturn
	case strings.Contains(util.FoldStatus(order.CancelReason), "cancel"):
		return internal.OutcomeCancelled
	case anyStatus:
		return internal.OutcomeDelivered
	default:
		return internal.OutcomeUnknown
	}
}
