// Package categories lists the configured expense categories
package categories

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/store"

	"github.com/spf13/cobra"
)

var initFile bool

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List expense categories and their keywords",
	Long: `List the expense categories offered by the form, with the keywords used
to suggest a category from a description. With --init, the built-in
categories are written to the categories file when it does not exist yet.`,
	Args: cobra.NoArgs,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&initFile, "init", false, "Write the default categories file if missing")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("ledger is not initialized")
	}
	out := cmd.OutOrStdout()
	if initFile {
		created, err := InitFile(root.AppContainer.GetCategoryStore())
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Wrote %s\n", root.AppContainer.GetCategoryStore().CategoriesFile)
		} else {
			fmt.Fprintf(out, "%s already exists\n", root.AppContainer.GetCategoryStore().CategoriesFile)
		}
	}
	cat := root.AppContainer.GetCategorizer()
	return Print(out, cat.Categories(), cat.Fallback())
}

// InitFile writes the default categories unless the file already exists.
func InitFile(s *store.CategoryStore) (bool, error) {
	if fileutils.FileExists(s.CategoriesFile) {
		return false, nil
	}
	if err := s.SaveCategories(models.DefaultCategories()); err != nil {
		return false, err
	}
	return true, nil
}

// Print writes one line per category.
func Print(w io.Writer, categories []models.CategoryConfig, fallback string) error {
	for _, c := range categories {
		line := c.Name
		if len(c.Keywords) > 0 {
			line += ": " + strings.Join(c.Keywords, ", ")
		}
		if c.Name == fallback {
			line += " (fallback)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
