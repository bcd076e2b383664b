package main

import (
	"os"

	"fjacquet/finance-tracker/cmd/add"
	"fjacquet/finance-tracker/cmd/categories"
	"fjacquet/finance-tracker/cmd/export"
	"fjacquet/finance-tracker/cmd/form"
	"fjacquet/finance-tracker/cmd/list"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/summary"
	"fjacquet/finance-tracker/internal/config"
)

func init() {
	// Environment first so FINANCE_* variables from .env reach the config
	config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(form.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
