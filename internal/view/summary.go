package view

import (
	"fmt"
	"strings"

	"fjacquet/finance-tracker/internal/models"
)

// FormatSummary renders the analytics text:
//
//	Total Expenses: $30.00
//
//	Category Breakdown:
//	Food: $15.00 (50.0%)
//	Transport: $15.00 (50.0%)
func FormatSummary(s models.Summary, currencySymbol string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Expenses: %s\n\nCategory Breakdown:", models.FormatMoney(s.Total, currencySymbol))
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "\n%s: %s (%s%%)",
			c.Category,
			models.FormatMoney(c.Amount, currencySymbol),
			models.FormatPercent(c.Percent))
	}
	return b.String()
}
