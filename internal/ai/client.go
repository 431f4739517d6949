package ai

import (
	"context"
	"fmt"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// NarrativeRequest is one text generation request. Zero-valued fields
// fall back to the package defaults.
type NarrativeRequest struct {
	Prompt        string
	SystemMessage string
	MaxTokens     int
	Temperature   float64
}

// Client generates narrative text, scene illustrations and speech.
// Implementations must be safe for concurrent use.
type Client interface {
	// GenerateNarrative returns generated Portuguese prose for the prompt.
	GenerateNarrative(ctx context.Context, req NarrativeRequest) (string, error)

	// GenerateImage returns the URL of a generated illustration.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// GenerateSpeech returns synthesized audio bytes for the text.
	GenerateSpeech(ctx context.Context, text string, voice Voice) ([]byte, error)
}

// disabledClient stands in when no provider is configured. Every call
// fails with ErrAIUnavailable so callers fall back to canned narration.
type disabledClient struct{}

// NewDisabledClient returns a Client for deployments without a provider key.
func NewDisabledClient() Client {
	return disabledClient{}
}

func (disabledClient) GenerateNarrative(ctx context.Context, req NarrativeRequest) (string, error) {
	return "", fmt.Errorf("%w: %s", domain.ErrAIUnavailable, ErrMsgMissingAPIKey)
}

func (disabledClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("%w: %s", domain.ErrAIUnavailable, ErrMsgMissingAPIKey)
}

func (disabledClient) GenerateSpeech(ctx context.Context, text string, voice Voice) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s", domain.ErrAIUnavailable, ErrMsgMissingAPIKey)
}
