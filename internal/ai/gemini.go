package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
)

// GeminiGenerator calls the Gemini API with a JSON response schema.
type GeminiGenerator struct {
	apiKey string
	model  string
	client *genai.Client
}

func NewGeminiGenerator(apiKey, model string) (*GeminiGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = constants.DefaultAIModel
	}
	return &GeminiGenerator{apiKey: apiKey, model: model}, nil
}

func (g *GeminiGenerator) ensureClient(ctx context.Context) error {
	if g.client != nil {
		return nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("ai: create client: %w", err)
	}
	g.client = client
	return nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	if err := g.ensureClient(ctx); err != nil {
		return Empty(), err
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(req)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return Empty(), fmt.Errorf("ai: generate content: %w", err)
	}
	return DecodeResponse(result.Text())
}

func responseSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"hour":  {Type: genai.TypeInteger},
			"task":  str(),
			"notes": str(),
		},
		Required: []string{"hour", "task", "notes"},
	}
	option := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       str(),
			"description": str(),
			"items":       {Type: genai.TypeArray, Items: item},
		},
		Required: []string{"title", "description", "items"},
	}
	insight := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       str(),
			"observation": str(),
			"suggestion":  str(),
			"impact":      {Type: genai.TypeString, Enum: []string{"High", "Medium", "Low"}},
			"type":        {Type: genai.TypeString, Enum: []string{"efficiency", "wellbeing", "pattern"}},
		},
		Required: []string{"title", "observation", "suggestion", "impact", "type"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"options":  {Type: genai.TypeArray, Items: option},
			"insights": {Type: genai.TypeArray, Items: insight},
		},
		Required: []string{"options", "insights"},
	}
}
