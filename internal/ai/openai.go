package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
	"github.com/SMCNetwolf/LLMGame/internal/metrics"
)

// OpenAIConfig configures the OpenAI-compatible HTTP client. Any
// provider exposing the same API surface works through BaseURL.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	ImageModel  string
	SpeechModel string
	HTTPClient  *http.Client
}

type openAIClient struct {
	apiKey      string
	baseURL     string
	textModel   string
	imageModel  string
	speechModel string
	client      *http.Client
}

// NewOpenAIClient builds a Client against an OpenAI-compatible API.
func NewOpenAIClient(cfg OpenAIConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrAIUnavailable, ErrMsgMissingAPIKey)
	}

	c := &openAIClient{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		textModel:   cfg.TextModel,
		imageModel:  cfg.ImageModel,
		speechModel: cfg.SpeechModel,
		client:      cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.textModel == "" {
		c.textModel = DefaultTextModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.speechModel == "" {
		c.speechModel = DefaultSpeechModel
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}

	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) GenerateNarrative(ctx context.Context, req NarrativeRequest) (narrative string, err error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPrompt)
	}
	defer observeRequest(metrics.AIKindText, time.Now(), &err)

	system := req.SystemMessage
	if system == "" {
		system = DefaultSystemMessage
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	body := chatRequest{
		Model: c.textModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var result chatResponse
	if err := c.post(ctx, "/chat/completions", body, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrAIUnavailable, ErrMsgEmptyCompletion)
	}

	logger.FromContext(ctx).Debug(LogMsgNarrativeGenerated, "model", c.textModel)
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (c *openAIClient) GenerateImage(ctx context.Context, prompt string) (url string, err error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPrompt)
	}
	defer observeRequest(metrics.AIKindImage, time.Now(), &err)

	body := imageRequest{
		Model:  c.imageModel,
		Prompt: prompt + ImageStyleSuffix,
		N:      1,
		Size:   DefaultImageSize,
	}

	var result imageResponse
	if err := c.post(ctx, "/images/generations", body, &result); err != nil {
		return "", err
	}
	if len(result.Data) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrAIUnavailable, ErrMsgEmptyImage)
	}

	logger.FromContext(ctx).Debug(LogMsgImageGenerated, "model", c.imageModel)
	return result.Data[0].URL, nil
}

type speechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

func (c *openAIClient) GenerateSpeech(ctx context.Context, text string, voice Voice) (audio []byte, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPrompt)
	}
	defer observeRequest(metrics.AIKindSpeech, time.Now(), &err)

	payload, err := json.Marshal(speechRequest{Model: c.speechModel, Input: text, Voice: string(voice)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrAIUnavailable, resp.StatusCode, string(body))
	}

	audio, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSpeechGenerated, "model", c.speechModel, "voice", string(voice))
	return audio, nil
}

func (c *openAIClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgProviderFailed, "path", path, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.FromContext(ctx).Error(LogMsgProviderFailed, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d: %s", domain.ErrAIUnavailable, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrAIUnavailable, err)
	}
	return nil
}

func observeRequest(kind string, start time.Time, err *error) {
	status := metrics.AIStatusOK
	if *err != nil {
		status = metrics.AIStatusError
	}
	metrics.AIRequests.WithLabelValues(kind, status).Inc()
	metrics.AIRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

var _ Client = (*openAIClient)(nil)
