// Package export writes a report of the ledger in json, xml or yaml
package export

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/report"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger and its summary as json, xml or yaml",
	Long: `Export every expense together with the total and the category breakdown.
The report is written to stdout unless --output is given.`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "F", report.FormatJSON,
		"Report format ("+strings.Join(report.Formats, ", ")+")")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidOutputFormat(format, report.Formats); err != nil {
		return err
	}
	if output != "" {
		if err := validation.IsValidOutputPath(output); err != nil {
			return err
		}
	}

	l, err := root.GetLedger()
	if err != nil {
		return err
	}
	data, err := Generate(root.AppContainer.GetReportGenerator(), l, format)
	if err != nil {
		return err
	}
	if err := Write(cmd.OutOrStdout(), output, data); err != nil {
		return err
	}
	if output != "" {
		root.Log.Info("Report exported",
			logging.F(logging.FieldFile, output),
			logging.F(logging.FieldFormat, format),
			logging.F(logging.FieldCount, l.Len()))
	}
	return nil
}

// Generate renders the current ledger in the requested format.
func Generate(g *report.ReportGenerator, l *ledger.Ledger, format string) ([]byte, error) {
	r := models.NewLedgerReport(l.Path(), l.Records(), l.Aggregate())
	return g.GenerateReport(r, format)
}

// Write sends data to path, or to w when path is empty.
func Write(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	f, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
