package summary_test

import (
	"testing"

	"fjacquet/finance-tracker/cmd/summary"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.Contains(t, summary.Cmd.Short, "total expenses")
	assert.NotNil(t, summary.Cmd.RunE)
}

func TestSummaryCommand_RequiresLedger(t *testing.T) {
	err := summary.Cmd.RunE(summary.Cmd, nil)
	assert.EqualError(t, err, "ledger is not initialized")
}
