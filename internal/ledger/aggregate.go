package ledger

import (
	"sort"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes the grand total and per-category totals of records.
// Categories are sorted by name. When the total is zero every percentage is
// zero.
func Aggregate(records []models.Expense) models.Summary {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, r := range records {
		total = total.Add(r.Amount)
		byCategory[r.Category] = byCategory[r.Category].Add(r.Amount)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]models.CategoryTotal, 0, len(names))
	for _, name := range names {
		amount := byCategory[name]
		percent := decimal.Zero
		if !total.IsZero() {
			percent = amount.Div(total).Mul(hundred)
		}
		categories = append(categories, models.CategoryTotal{
			Category: name,
			Amount:   amount,
			Percent:  percent,
		})
	}

	return models.Summary{
		Total:      total,
		Count:      len(records),
		Categories: categories,
	}
}
