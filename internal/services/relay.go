package services

import (
	"context"
	"strings"
	"time"

	"portfolio-relay/internal/models"
)

// TextGenerator turns a prompt into generated text. Implementations return
// AuthConfigError, QuotaExceededError or UpstreamError on failure.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type PromptBuilder interface {
	Build(message string) string
}

type RelayService struct {
	generator TextGenerator
	prompts   PromptBuilder
	timeout   time.Duration
	now       func() time.Time
}

// NewRelayService wires the provider and prompt builder. A zero timeout
// leaves the provider call bounded only by the request context.
func NewRelayService(generator TextGenerator, prompts PromptBuilder, timeout time.Duration) *RelayService {
	return &RelayService{
		generator: generator,
		prompts:   prompts,
		timeout:   timeout,
		now:       time.Now,
	}
}

// HandleChat validates the message, forwards the composed prompt and stamps
// the reply.
func (s *RelayService) HandleChat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, &ValidationError{Message: "Message is required"}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.generator.Generate(ctx, s.prompts.Build(req.Message))
	if err != nil {
		return nil, classifyProviderError(err)
	}

	return &models.ChatResponse{
		Reply:     reply,
		Timestamp: models.Timestamp(s.now()),
	}, nil
}
