// Package list prints the ledger as a table
package list

import (
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/view"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses",
	Long:  `List all expenses in ledger order with their date, category, amount and description.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := root.GetLedger()
		if err != nil {
			return err
		}
		return view.RenderTable(cmd.OutOrStdout(), l.Records(), root.CurrencySymbol())
	},
}
