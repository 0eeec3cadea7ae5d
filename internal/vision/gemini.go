package vision

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"pricelens/internal/model"
)

const geminiModel = "gemini-2.0-flash"

type GeminiAnalyzer struct {
	client *genai.Client
}

func NewGeminiAnalyzer(ctx context.Context, apiKey string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client}, nil
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) ([]model.DetectedItem, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: image, MIMEType: mimeType}},
		genai.NewPartFromText(ItemsPrompt()),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	ev := log.Info().Str("model", geminiModel)
	if result.UsageMetadata != nil {
		ev = ev.Int32("inputTokens", result.UsageMetadata.PromptTokenCount).
			Int32("outputTokens", result.UsageMetadata.CandidatesTokenCount)
	}
	ev.Msg("vision llm call")

	return ParseItems(result.Text())
}
