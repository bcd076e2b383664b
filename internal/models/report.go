package models

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"
)

// LedgerReport is the exported snapshot of the ledger. Amounts are rendered
// as fixed two-decimal strings so every output format shows the same values.
type LedgerReport struct {
	XMLName     xml.Name         `json:"-" yaml:"-" xml:"ledgerReport"`
	ReportID    string           `json:"reportId" yaml:"reportId" xml:"id,attr"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generatedAt" xml:"generatedAt"`
	Source      string           `json:"source" yaml:"source" xml:"source"`
	Count       int              `json:"count" yaml:"count" xml:"count"`
	Total       string           `json:"total" yaml:"total" xml:"total"`
	Categories  []ReportCategory `json:"categories" yaml:"categories" xml:"categories>category"`
	Records     []ReportRecord   `json:"records" yaml:"records" xml:"records>record"`
}

// ReportCategory is one line of the category breakdown.
type ReportCategory struct {
	Name    string `json:"name" yaml:"name" xml:"name,attr"`
	Amount  string `json:"amount" yaml:"amount" xml:"amount"`
	Percent string `json:"percent" yaml:"percent" xml:"percent"`
}

// ReportRecord is one exported expense.
type ReportRecord struct {
	Date        string `json:"date" yaml:"date" xml:"date"`
	Category    string `json:"category" yaml:"category" xml:"category"`
	Amount      string `json:"amount" yaml:"amount" xml:"amount"`
	Description string `json:"description" yaml:"description" xml:"description"`
}

// NewLedgerReport builds a report with a fresh identifier.
func NewLedgerReport(source string, records []Expense, summary Summary) *LedgerReport {
	r := &LedgerReport{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Count:       summary.Count,
		Total:       summary.Total.StringFixed(2),
		Categories:  make([]ReportCategory, 0, len(summary.Categories)),
		Records:     make([]ReportRecord, 0, len(records)),
	}
	for _, c := range summary.Categories {
		r.Categories = append(r.Categories, ReportCategory{
			Name:    c.Category,
			Amount:  c.Amount.StringFixed(2),
			Percent: FormatPercent(c.Percent),
		})
	}
	for _, e := range records {
		r.Records = append(r.Records, ReportRecord{
			Date:        e.Date,
			Category:    e.Category,
			Amount:      e.Amount.StringFixed(2),
			Description: e.Description,
		})
	}
	return r
}
