package models

import "github.com/shopspring/decimal"

// CategoryTotal is the aggregated amount of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal // share of the grand total, 0..100
}

// Summary is the analytics view of the ledger.
type Summary struct {
	Total      decimal.Decimal
	Count      int
	Categories []CategoryTotal // sorted by category name
}

// CategorySum returns the sum of all per-category totals.
func (s Summary) CategorySum() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range s.Categories {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// Lookup returns the total of the named category.
func (s Summary) Lookup(category string) (CategoryTotal, bool) {
	for _, c := range s.Categories {
		if c.Category == category {
			return c, true
		}
	}
	return CategoryTotal{}, false
}
