package analytics

import (
	"sort"
	"strings"

	"profitlens/internal"
	"profitlens/internal/util"
)

// DispatchSummary counts delivered versus failed dispatches for one key.
type DispatchSummary struct {
	Delivered int
	Failed    int
}

// SuccessRate is the delivered share of classified dispatches, one decimal,
// zero when nothing classified.
func (s DispatchSummary) SuccessRate() float64 {
	return internal.Percent(s.Delivered, s.Delivered+s.Failed)
}

type Report struct {
	BySKU   map[string]*DispatchSummary
	ByState map[string]*DispatchSummary
}

// Summarize reads fulfillment signals from the orders export alone, without
// settlement data: the credit-entry reason marks a row delivered or failed
// (rto / failed delivery), keyed by SKU and by customer state.
func Summarize(orders []internal.OrderRecord) *Report {
	report := &Report{
		BySKU:   map[string]*DispatchSummary{},
		ByState: map[string]*DispatchSummary{},
	}
	for _, order := range orders {
		reason := util.FoldStatus(order.CancelReason)
		delivered := strings.Contains(reason, "delivered")
		failed := strings.Contains(reason, "rto") || strings.Contains(reason, "failed")

		state := order.CustomerState
		if state == "" {
			state = "Unknown"
		}

		for _, s := range []*DispatchSummary{
			summaryFor(report.BySKU, order.SKU),
			summaryFor(report.ByState, state),
		} {
			if delivered {
				s.Delivered++
			}
			if failed {
				s.Failed++
			}
		}
	}
	return report
}

// SortedKeys gives a stable print order for a dispatch map.
func SortedKeys(m map[string]*DispatchSummary) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func summaryFor(m map[string]*DispatchSummary, key string) *DispatchSummary {
	s, ok := m[key]
	if !ok {
		s = &DispatchSummary{}
		m[key] = s
	}
	return s
}
