// Package categorizer suggests a category for an expense description:
// 1. Keyword rules from the categories YAML file
// 2. Gemini, when AI categorization is enabled
// 3. The configured fallback category
package categorizer

import (
	"context"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
)

// CategoryStoreInterface loads category definitions.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// Categorizer runs its strategies in order and falls back to a default
// category when none matches.
type Categorizer struct {
	categories []models.CategoryConfig
	strategies []CategorizationStrategy
	fallback   string
	logger     logging.Logger
}

// NewCategorizer loads the categories from store and builds the strategy
// chain. aiClient may be nil to disable AI categorization. A store failure
// falls back to the built-in categories.
func NewCategorizer(store CategoryStoreInterface, aiClient AIClient, fallback string, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if fallback == "" {
		fallback = models.CategoryOther
	}

	categories := models.DefaultCategories()
	if store != nil {
		loaded, err := store.LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load categories, using defaults")
		} else if len(loaded) > 0 {
			categories = loaded
		}
	}

	c := &Categorizer{
		categories: categories,
		fallback:   fallback,
		logger:     logger,
	}
	c.strategies = append(c.strategies, NewKeywordStrategy(categories, logger))
	if aiClient != nil {
		c.strategies = append(c.strategies, NewAIStrategy(aiClient, models.CategoryNames(categories), logger))
	}
	return c
}

// Suggest returns the category for description, or the fallback.
func (c *Categorizer) Suggest(ctx context.Context, description string) string {
	for _, strategy := range c.strategies {
		name, found, err := strategy.Categorize(ctx, description)
		if err != nil {
			c.logger.WithError(err).Warn("Categorization strategy failed",
				logging.F(logging.FieldStrategy, strategy.Name()),
				logging.F(logging.FieldDescription, description))
			continue
		}
		if found {
			return name
		}
	}

	c.logger.Debug("No category matched, using fallback",
		logging.F(logging.FieldDescription, description),
		logging.F(logging.FieldCategory, c.fallback))
	return c.fallback
}

// Categories returns the category definitions in use.
func (c *Categorizer) Categories() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(c.categories))
	copy(out, c.categories)
	return out
}

// Fallback returns the category used when nothing matches.
func (c *Categorizer) Fallback() string {
	return c.fallback
}
