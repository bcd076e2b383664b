package categorizer

import "context"

// AIClient asks a language model to classify an expense description into
// one of the given categories. The answer is returned verbatim; callers
// check it against the allowed names.
type AIClient interface {
	Categorize(ctx context.Context, description string, categories []string) (string, error)
}
