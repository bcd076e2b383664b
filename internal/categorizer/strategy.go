package categorizer

import "context"

// CategorizationStrategy is one way of picking a category for an expense
// description. Strategies are tried in order until one reports a match.
type CategorizationStrategy interface {
	// Categorize returns the category name and whether the strategy found
	// one. An error means the strategy could not run, not that nothing
	// matched.
	Categorize(ctx context.Context, description string) (string, bool, error)

	// Name identifies the strategy in logs.
	Name() string
}
