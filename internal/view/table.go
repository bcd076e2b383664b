// Package view renders the ledger for the terminal: the record table, the
// analytics summary and input warnings. It only reads ledger snapshots.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/finance-tracker/internal/models"
)

// TableHeaders are the column titles of the record table.
var TableHeaders = []string{"Date", "Category", "Amount", "Description"}

// RenderTable writes one row per record, in ledger order.
func RenderTable(w io.Writer, records []models.Expense, currencySymbol string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(TableHeaders, "\t")); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			cell(r.Date),
			cell(r.Category),
			models.FormatMoney(r.Amount, currencySymbol),
			cell(r.Description),
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// cell keeps a value on one table line.
func cell(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
