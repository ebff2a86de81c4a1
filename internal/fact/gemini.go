package fact

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// contentGenerator is the subset of *genai.Models used by GeminiProvider.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider generates facts with the Gemini API.
type GeminiProvider struct {
	models contentGenerator
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return newGeminiProvider(client.Models, model), nil
}

func newGeminiProvider(models contentGenerator, model string) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{models: models, model: model}
}

// Name identifies the provider in logs and traces.
func (g *GeminiProvider) Name() string {
	return "gemini:" + g.model
}

// Fetch asks the model for one fact.
func (g *GeminiProvider) Fetch(ctx context.Context) (Fact, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(factPrompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   factSchema,
		Temperature:      genai.Ptr[float32](1.0),
	})
	if err != nil {
		return Fact{}, fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return Fact{}, ErrEmptyFact
	}
	return parseFact(resp.Text())
}

// parseFact decodes {"fact": "..."}; a reply that is not JSON at all is
// accepted as the fact text itself.
func parseFact(raw string) (Fact, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "{") {
		var f Fact
		if err := json.Unmarshal([]byte(text), &f); err != nil {
			return Fact{}, fmt.Errorf("decode gemini fact: %w", err)
		}
		return normalize(f)
	}
	return normalize(Fact{Text: text})
}
