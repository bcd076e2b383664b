package categorizer

import (
	"context"
	"strings"

	"fjacquet/finance-tracker/internal/logging"
)

// AIStrategy asks an AIClient to choose among the configured categories.
// Answers naming anything else are ignored.
type AIStrategy struct {
	aiClient   AIClient
	categories []string
	logger     logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance.
func NewAIStrategy(aiClient AIClient, categories []string, logger logging.Logger) *AIStrategy {
	return &AIStrategy{
		aiClient:   aiClient,
		categories: categories,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize implements CategorizationStrategy.
func (s *AIStrategy) Categorize(ctx context.Context, description string) (string, bool, error) {
	if s.aiClient == nil || strings.TrimSpace(description) == "" || len(s.categories) == 0 {
		return "", false, nil
	}

	answer, err := s.aiClient.Categorize(ctx, description, s.categories)
	if err != nil {
		return "", false, err
	}

	name, ok := s.match(answer)
	if !ok {
		s.logger.Debug("AI answer is not a configured category",
			logging.F(logging.FieldStrategy, s.Name()),
			logging.F(logging.FieldDescription, description),
			logging.F("answer", answer))
		return "", false, nil
	}

	s.logger.Debug("Expense categorized using AI",
		logging.F(logging.FieldStrategy, s.Name()),
		logging.F(logging.FieldDescription, description),
		logging.F(logging.FieldCategory, name))
	return name, true, nil
}

// match maps a free-form answer to the canonical category name.
func (s *AIStrategy) match(answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "Category:")
	answer = strings.Trim(strings.TrimSpace(answer), `."'*`)
	for _, name := range s.categories {
		if strings.EqualFold(answer, name) {
			return name, true
		}
	}
	return "", false
}
