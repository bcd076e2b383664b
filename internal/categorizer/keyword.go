package categorizer

import (
	"context"
	"strings"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
)

// KeywordStrategy matches the description against the keywords of each
// configured category, case-insensitively. The first category in file order
// with a matching keyword wins.
type KeywordStrategy struct {
	categories []models.CategoryConfig
	logger     logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over categories.
func NewKeywordStrategy(categories []models.CategoryConfig, logger logging.Logger) *KeywordStrategy {
	return &KeywordStrategy{
		categories: categories,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize implements CategorizationStrategy.
func (s *KeywordStrategy) Categorize(_ context.Context, description string) (string, bool, error) {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return "", false, nil
	}

	for _, category := range s.categories {
		for _, keyword := range category.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" || !strings.Contains(text, keyword) {
				continue
			}
			s.logger.Debug("Expense categorized by keyword",
				logging.F(logging.FieldStrategy, s.Name()),
				logging.F(logging.FieldDescription, description),
				logging.F("keyword", keyword),
				logging.F(logging.FieldCategory, category.Name))
			return category.Name, true, nil
		}
	}
	return "", false, nil
}
