package engine

import (
	"strings"

	"profitlens/internal"
	"profitlens/internal/util"
)

// UnknownSKU is the sentinel for order rows with a blank SKU column.
const UnknownSKU = "unknown"

// Column aliases per semantic field, in precedence order. Lookup happens over
// folded header names, so "Sub Order No" and "sub order no" are one column.
var (
	orderIDKeys       = []string{"sub order no", "sub order number"}
	skuKeys           = []string{"sku", "supplier sku"}
	productNameKeys   = []string{"product name"}
	cancelReasonKeys  = []string{"reason for credit entry"}
	customerStateKeys = []string{"customer state"}
	settlementKeys    = []string{"final settlement amount"}
	statusKeys        = []string{"live order status", "payment status"}
	orderDateKeys     = []string{"order date"}
	paymentDateKeys   = []string{"payment date"}
	transactionKeys   = []string{"transaction type"}
)

func NormalizeOrders(rows []internal.RawRow) []internal.OrderRecord {
	out := make([]internal.OrderRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, NormalizeOrder(row))
	}
	return out
}

// NormalizeOrder turns one raw orders-export row into a canonical record.
// Missing columns read as empty; a blank SKU becomes the unknown sentinel.
func NormalizeOrder(row internal.RawRow) internal.OrderRecord {
	folded := foldRow(row)
	sku := strings.TrimSpace(pick(folded, skuKeys))
	if sku == "" {
		sku = UnknownSKU
	}
	return internal.OrderRecord{
		OrderID:       strings.TrimSpace(pick(folded, orderIDKeys)),
		SKU:           sku,
		ProductName:   pick(folded, productNameKeys),
		CancelReason:  pick(folded, cancelReasonKeys),
		CustomerState: strings.TrimSpace(pick(folded, customerStateKeys)),
		Raw:           row,
	}
}

func NormalizePayments(rows []internal.RawRow) []internal.PaymentRecord {
	out := make([]internal.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, NormalizePayment(row))
	}
	return out
}

// NormalizePayment turns one settlement-export row into a canonical record.
// A settlement amount that fails to parse coerces to zero, never an error.
func NormalizePayment(row internal.RawRow) internal.PaymentRecord {
	folded := foldRow(row)
	transaction := strings.TrimSpace(pick(folded, transactionKeys))
	if transaction == "" {
		transaction = "Payment"
	}
	return internal.PaymentRecord{
		OrderID:          strings.TrimSpace(pick(folded, orderIDKeys)),
		SettlementAmount: util.ParseAmount(pick(folded, settlementKeys)),
		Status:           pick(folded, statusKeys),
		OrderDate:        pick(folded, orderDateKeys),
		PaymentDate:      pick(folded, paymentDateKeys),
		TransactionType:  transaction,
	}
}

// foldRow indexes a raw row by folded header name. When two spellings of the
// same column collide, the first non-empty value wins.
func foldRow(row internal.RawRow) map[string]string {
	folded := make(map[string]string, len(row))
	for key, value := range row {
		fk := util.FoldKey(key)
		if existing, ok := folded[fk]; ok && strings.TrimSpace(existing) != "" {
			continue
		}
		folded[fk] = value
	}
	return folded
}

func pick(folded map[string]string, keys []string) string {
	for _, key := range keys {
		if value, ok := folded[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
