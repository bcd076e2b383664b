package categorizer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockAIClient struct {
	mock.Mock
}

func (m *mockAIClient) Categorize(ctx context.Context, description string, categories []string) (string, error) {
	args := m.Called(ctx, description, categories)
	return args.String(0), args.Error(1)
}
