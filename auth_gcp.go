package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiExtractor wraps the Google GenAI client for VertexAI. It is the
// word-extraction backend used when no Anthropic key is configured.
type GeminiExtractor struct {
	client    *genai.Client
	modelName string
}

// NewGeminiExtractor creates an extractor using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiExtractor(ctx context.Context, projectID, region string) (*GeminiExtractor, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiExtractor{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiExtractor) Close() error {
	return nil
}
