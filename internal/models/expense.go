// Package models provides the data structures shared by the ledger, its
// stores and the presentation layer.
package models

import "github.com/shopspring/decimal"

// DateLayout is the layout of dates entered through the form.
const DateLayout = "2006-01-02"

// Expense is one ledger record. Records are never mutated after creation.
type Expense struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// NewExpense creates an Expense. It does not validate the amount; the ledger does.
func NewExpense(date, category string, amount decimal.Decimal, description string) Expense {
	return Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
}

// Equal compares two records field by field, comparing amounts numerically
// so that 10 and 10.00 are the same record.
func (e Expense) Equal(other Expense) bool {
	return e.Date == other.Date &&
		e.Category == other.Category &&
		e.Amount.Equal(other.Amount) &&
		e.Description == other.Description
}

// Entry is the raw content of the entry form before validation.
type Entry struct {
	Date        string
	Category    string
	Amount      string
	Description string
}
