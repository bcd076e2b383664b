package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads the category set offered by the entry form and used
// by the keyword categorizer.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store reading categoriesFile.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// LoadCategories reads the categories file. A missing or empty file yields
// models.DefaultCategories. Both `categories: [...]` and a bare list are
// accepted.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if s.CategoriesFile == "" {
		return models.DefaultCategories(), nil
	}

	data, err := os.ReadFile(s.CategoriesFile)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("Categories file not found, using defaults",
			logging.F(logging.FieldFile, s.CategoriesFile))
		return models.DefaultCategories(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		return normalize(categoriesConfig.Categories), nil
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	if len(categories) == 0 {
		return models.DefaultCategories(), nil
	}
	return normalize(categories), nil
}

// SaveCategories writes categories in the `categories: [...]` layout.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	file, err := fileutils.CreateFile(s.CategoriesFile)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("error writing categories: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error writing categories: %w", err)
	}

	s.logger.Info("Saved categories",
		logging.F(logging.FieldFile, s.CategoriesFile),
		logging.F(logging.FieldCount, len(categories)))
	return nil
}

// normalize trims names, lower-cases keywords and drops unnamed entries.
func normalize(in []models.CategoryConfig) []models.CategoryConfig {
	out := make([]models.CategoryConfig, 0, len(in))
	for _, c := range in {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		out = append(out, models.CategoryConfig{Name: name, Keywords: keywords})
	}
	return out
}
