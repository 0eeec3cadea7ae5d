package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pricelens/internal/model"
)

var (
	ErrEmptyResponse = errors.New("vision model returned an empty response")
	ErrNoItems       = errors.New("no items detected in image")
)

// Analyzer identifies the items shown in an image.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) ([]model.DetectedItem, error)
}

// ParseItems decodes the model's JSON array of items. Models like to wrap
// their answer in a markdown code fence, so that is stripped first.
func ParseItems(text string) ([]model.DetectedItem, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var items []model.DetectedItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("failed to parse analysis results: %w (response: %s)", err, text)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// New returns the analyzer for provider.
func New(ctx context.Context, provider, geminiKey, openAIKey string) (Analyzer, error) {
	switch provider {
	case ProviderGemini, "":
		if geminiKey == "" {
			return nil, errors.New("GEMINI_API_KEY is not set")
		}
		return NewGeminiAnalyzer(ctx, geminiKey)
	case ProviderOpenAI:
		if openAIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
		return NewOpenAIAnalyzer(openAIKey), nil
	default:
		return nil, fmt.Errorf("unknown vision provider %q", provider)
	}
}
