package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// contentGenerator is the slice of *genai.GenerativeModel we depend on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	client    *genai.Client
	model     contentGenerator
	modelName string
}

// NewGeminiService creates the Gemini client. Without an API key the service
// is still usable but every Generate call fails with AuthConfigError.
func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature *float32) (*GeminiService, error) {
	if apiKey == "" {
		return &GeminiService{modelName: modelName}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	if temperature != nil {
		model.SetTemperature(*temperature)
	}

	return &GeminiService{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *GeminiService) ModelName() string {
	return s.modelName
}

// Generate sends prompt to the model and returns the full, non-streamed text.
// Errors are always one of AuthConfigError, QuotaExceededError or UpstreamError.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.model == nil {
		return "", &AuthConfigError{Err: errMissingAPIKey}
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyProviderError(fmt.Errorf("Gemini API error: %w", err))
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &UpstreamError{Err: errors.New("Gemini returned no candidates")}
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	return extractText(resp), nil
}

// Helper functions

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}
