// Package dateutils parses and normalizes the dates typed into the entry form.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted from user input. Records are always stored as ISO.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlashes  = "2006/01/02"
)

// CommonFormats is the list of layouts tried by ParseDate, in order.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutSlashes,
}

// Now is the clock used for "today"; tests replace it.
var Now = time.Now

// ParseDate parses a date in any of CommonFormats.
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeDate converts user input to YYYY-MM-DD. Blank input means today.
func NormalizeDate(dateStr string) (string, error) {
	if strings.TrimSpace(dateStr) == "" {
		return Today(), nil
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return ToISODate(Now())
}
