package add

import (
	"fjacquet/finance-tracker/internal/dateutils"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*dateValue)(nil)

// dateValue is a pflag.Value accepting the layouts of dateutils and storing
// the date as YYYY-MM-DD. An empty value means today.
type dateValue struct {
	value *string
}

func newDateValue(p *string) *dateValue {
	return &dateValue{value: p}
}

func (d *dateValue) String() string {
	if d.value == nil {
		return ""
	}
	return *d.value
}

func (d *dateValue) Set(s string) error {
	normalized, err := dateutils.NormalizeDate(s)
	if err != nil {
		return err
	}
	*d.value = normalized
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
