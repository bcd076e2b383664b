// Package summary prints the expense analytics
package summary

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/view"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total expenses and the category breakdown",
	Long: `Show the total of all expenses and, for each category, its total and
its share of the overall total.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := root.GetLedger()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), view.FormatSummary(l.Aggregate(), root.CurrencySymbol()))
		return err
	},
}
