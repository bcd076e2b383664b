// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/ledgererror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/view"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	File      string
	Config    string
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the dependencies built for the running command
	AppContainer *container.Container

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-tracker",
		Short: "Record and review personal expenses.",
		Long: `finance-tracker records personal expenses (date, category, amount,
description) in a flat CSV ledger and shows the running total with a
per-category breakdown.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              showLedger,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close resources")
				}
				AppContainer = nil
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Ledger file (default from config, expenses.csv)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default is $HOME/.finance-tracker/config.yaml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

// setup loads the configuration, builds the container and loads the ledger.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.Load(SharedFlags.Config)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		return err
	}
	AppContainer = c

	return c.GetLedger().Load(cmd.Context())
}

func applyFlags(cfg *config.Config) {
	if SharedFlags.File != "" {
		cfg.Ledger.File = SharedFlags.File
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}
}

// GetLedger returns the ledger loaded for the running command.
func GetLedger() (*ledger.Ledger, error) {
	if AppContainer == nil {
		return nil, errors.New("ledger is not initialized")
	}
	return AppContainer.GetLedger(), nil
}

// CurrencySymbol returns the configured currency symbol.
func CurrencySymbol() string {
	if AppContainer == nil {
		return "$"
	}
	return AppContainer.GetConfig().Display.CurrencySymbol
}

// ShowLedger writes the record table followed by the summary.
func ShowLedger(w io.Writer, l *ledger.Ledger, currencySymbol string) error {
	return view.NewPresenter(w, currencySymbol, Log).Render(ledger.Event{
		Records: l.Records(),
		Summary: l.Aggregate(),
	})
}

func showLedger(cmd *cobra.Command, args []string) error {
	l, err := GetLedger()
	if err != nil {
		return err
	}
	return ShowLedger(cmd.OutOrStdout(), l, CurrencySymbol())
}

// ReportError prints err for the user: validation errors as a coloured
// warning, anything else as a plain error line.
func ReportError(w io.Writer, err error) {
	if ledgererror.IsValidation(err) {
		view.PrintWarning(w, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
