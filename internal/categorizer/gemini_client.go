package categorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/finance-tracker/internal/logging"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const categoryPrompt = `Categorize the following personal expense:
Description: %s

Assign it to exactly one of these categories:
%s

Respond with the category name only.`

var errEmptyResponse = errors.New("no response from Gemini API")

// contentGenerator is the part of *genai.GenerativeModel the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements AIClient on top of the Google Gemini API. Failed
// calls are retried with exponential backoff.
type GeminiClient struct {
	client     *genai.Client
	model      contentGenerator
	modelName  string
	timeout    time.Duration
	maxRetries int
	newBackOff func() backoff.BackOff
	logger     logging.Logger
}

// GeminiOptions configures NewGeminiClient.
type GeminiOptions struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// NewGeminiClient creates a client for the configured model.
func NewGeminiClient(ctx context.Context, opts GeminiOptions, logger logging.Logger) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(0)

	g := newGeminiClient(model, opts, logger)
	g.client = client
	return g, nil
}

func newGeminiClient(model contentGenerator, opts GeminiOptions, logger logging.Logger) *GeminiClient {
	return &GeminiClient{
		model:      model,
		modelName:  opts.Model,
		timeout:    opts.Timeout,
		maxRetries: opts.MaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		logger:     logger,
	}
}

// Categorize implements AIClient.
func (c *GeminiClient) Categorize(ctx context.Context, description string, categories []string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(categoryPrompt, description, strings.Join(categories, ", "))
	retries := c.maxRetries
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(retries)), ctx)

	attempt := 0
	answer, err := backoff.RetryWithData(func() (string, error) {
		attempt++
		resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			c.logger.WithError(err).Debug("Gemini request failed",
				logging.F(logging.FieldModel, c.modelName),
				logging.F(logging.FieldAttempt, attempt))
			return "", err
		}
		text := responseText(resp)
		if text == "" {
			return "", backoff.Permanent(errEmptyResponse)
		}
		return text, nil
	}, policy)
	if err != nil {
		return "", fmt.Errorf("gemini categorization failed after %d attempt(s): %w", attempt, err)
	}
	return answer, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
