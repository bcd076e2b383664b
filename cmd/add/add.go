// Package add records a single expense from command-line flags
package add

import (
	"context"
	"fmt"
	"io"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/view"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var entry models.Entry

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense to the ledger",
	Long: `Add an expense to the ledger. The whole ledger file is rewritten after
the record is appended. A blank category is filled in from the category
keywords (or Gemini when AI categorization is enabled).`,
	Example: `  finance-tracker add -a 12.50 -c Food -d "lunch"
  finance-tracker add --date 2024-03-01 --amount 40 --description "electricity"`,
	Args: cobra.NoArgs,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().VarP(newDateValue(&entry.Date), "date", "t", "Expense date, YYYY-MM-DD (default today)")
	Cmd.Flags().StringVarP(&entry.Category, "category", "c", "", "Expense category (suggested from the description when empty)")
	Cmd.Flags().StringVarP(&entry.Amount, "amount", "a", "", "Expense amount, must be positive")
	Cmd.Flags().StringVarP(&entry.Description, "description", "d", "", "Expense description")
	_ = Cmd.MarkFlagRequired("amount")

	cobra.OnFinalize(resetFlags)
}

// resetFlags clears the parsed values so a later Execute in the same
// process starts from the defaults.
func resetFlags() {
	entry = models.Entry{}
	Cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}

func addFunc(cmd *cobra.Command, args []string) error {
	l, err := root.GetLedger()
	if err != nil {
		return err
	}
	return Run(cmd.Context(), cmd.OutOrStdout(), l, entry, root.CurrencySymbol())
}

// Run submits e to l and prints the stored record and the new summary.
func Run(ctx context.Context, w io.Writer, l *ledger.Ledger, e models.Entry, currencySymbol string) error {
	added, err := l.Submit(ctx, e)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Added %s %s %s %s\n\n",
		added.Date, added.Category, models.FormatMoney(added.Amount, currencySymbol), added.Description)
	_, err = fmt.Fprintln(w, view.FormatSummary(l.Aggregate(), currencySymbol))
	return err
}
