package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/legallens/legal-lens-api/internal/utils"
)

// GeminiGenerator sends prompts to a fixed Gemini model with the
// provider's default generation parameters. No streaming, no tool use,
// no retries.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *utils.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, logger *utils.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("Sending prompt to Gemini", "prompt_chars", len(prompt))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return sb.String(), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
