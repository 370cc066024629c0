package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

// NewGeminiService creates the Gemini client. The API key is injected here
// once at startup; an empty key is a configuration error, not a per-call one.
func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements GeminiService. One call, no retries.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	if resp == nil {
		return "", &GenerationError{Err: fmt.Errorf("no response generated (nil response)")}
	}

	text := resp.Text()
	if text == "" {
		return "", &GenerationError{Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
