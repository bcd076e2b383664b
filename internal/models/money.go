package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("amount is empty")

// ParseAmount parses user-entered amount text. Surrounding whitespace is
// ignored; anything decimal.NewFromString rejects is an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, errEmptyAmount
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}

// ParseAmountOrZero parses a persisted amount, returning zero when the text
// is not a number. Used on load, where bad amounts are not reported.
func ParseAmountOrZero(amountStr string) decimal.Decimal {
	dec, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// FormatMoney renders an amount with the currency symbol and two decimals,
// e.g. "$15.00".
func FormatMoney(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}

// FormatPercent renders a percentage with one decimal, e.g. "50.0".
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(1)
}
