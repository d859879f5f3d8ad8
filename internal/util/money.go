package util

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reThousandDot   = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+$`)
	reThousandComma = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+$`)
)

// ParseAmount reads a settlement or cost cell. A malformed value falls back
// to zero so one bad cell never aborts a run.
func ParseAmount(input string) decimal.Decimal {
	token := strings.TrimSpace(input)
	token = strings.TrimPrefix(token, "₹")
	token = strings.ReplaceAll(token, " ", "")
	token = strings.ReplaceAll(token, " ", "")
	if token == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(normalizeNumericToken(token))
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

func normalizeNumericToken(token string) string {
	if reThousandDot.MatchString(token) {
		return strings.ReplaceAll(token, ".", "")
	}
	if reThousandComma.MatchString(token) {
		return strings.ReplaceAll(token, ",", "")
	}
	if strings.Contains(token, ",") && !strings.Contains(token, ".") {
		return strings.ReplaceAll(token, ",", ".")
	}
	return strings.ReplaceAll(token, ",", "")
}
