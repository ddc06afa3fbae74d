// Package gemini enriches résumé assessments with Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-rocket/internal/enrich"
	"resume-rocket/resume/model"
)

const (
	defaultModel = "gemini-2.5-flash"
	maxItems     = 3
)

// TextGenerator returns the model's text reply to a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator wraps the GenAI client for single prompt calls.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a Generator on the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Generator{client: client, modelName: model}, nil
}

// GenerateContent sends the prompt and joins the text parts of every candidate.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || strings.TrimSpace(part.Text) == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(strings.TrimSpace(part.Text))
		}
	}
	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

// Model is the configured model name.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

// Enricher asks a model for insights and suggestions as JSON.
type Enricher struct {
	gen TextGenerator
}

// New returns an Enricher over gen.
func New(gen TextGenerator) *Enricher {
	return &Enricher{gen: gen}
}

type reply struct {
	Insights    []string `json:"insights"`
	Suggestions []string `json:"suggestions"`
}

// Enrich sends the résumé to the model. A reply that is not valid JSON gets
// one repair round trip before the call fails.
func (e *Enricher) Enrich(ctx context.Context, text string) (*model.Enrichment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	raw, err := e.gen.GenerateContent(ctx, enrich.Prompt(text))
	if err != nil {
		return nil, err
	}
	parsed, err := decode(raw)
	if err != nil {
		raw, err = e.gen.GenerateContent(ctx, enrich.FixJSONPrompt(raw))
		if err != nil {
			return nil, err
		}
		if parsed, err = decode(raw); err != nil {
			return nil, fmt.Errorf("invalid JSON from gemini: %w", err)
		}
	}
	return &model.Enrichment{
		Source:      enrich.ProviderGemini,
		Insights:    clean(parsed.Insights),
		Suggestions: clean(parsed.Suggestions),
	}, nil
}

func decode(raw string) (reply, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	var out reply
	err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out)
	return out, err
}

func clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == maxItems {
			break
		}
	}
	return out
}
