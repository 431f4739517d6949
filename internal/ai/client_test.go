package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

func TestVoiceForClass(t *testing.T) {
	assert.Equal(t, VoiceNova, VoiceForClass("Mago"))
	assert.Equal(t, VoiceEcho, VoiceForClass("caçador"))
	assert.Equal(t, VoiceShimmer, VoiceForClass("Guerreiro"))
	assert.Equal(t, VoiceOnyx, VoiceForClass("Necromante"))
	assert.Equal(t, VoiceOnyx, VoiceForClass(""))
}

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAIConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestGenerateNarrative(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: "  A taverna está cheia.  "}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := client.GenerateNarrative(context.Background(), NarrativeRequest{Prompt: "descreva a taverna"})
	require.NoError(t, err)
	assert.Equal(t, "A taverna está cheia.", text)

	// Defaults are applied on the wire
	assert.Equal(t, DefaultTextModel, gotReq.Model)
	assert.Equal(t, DefaultMaxTokens, gotReq.MaxTokens)
	assert.InDelta(t, DefaultTemperature, gotReq.Temperature, 0.001)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, DefaultSystemMessage, gotReq.Messages[0].Content)
}

func TestGenerateNarrative_EmptyPrompt(t *testing.T) {
	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key"})
	require.NoError(t, err)

	_, err = client.GenerateNarrative(context.Background(), NarrativeRequest{Prompt: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerateNarrative_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GenerateNarrative(context.Background(), NarrativeRequest{Prompt: "olá"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestGenerateImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/images/generations", r.URL.Path)

		var req imageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Prompt, ImageStyleSuffix)
		assert.Equal(t, 1, req.N)
		assert.Equal(t, DefaultImageSize, req.Size)

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"url": "https://img.example/1.png"}},
		})
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	url, err := client.GenerateImage(context.Background(), "uma vila ao amanhecer")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/1.png", url)
}

func TestGenerateSpeech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/speech", r.URL.Path)

		var req speechRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, string(VoiceNova), req.Voice)

		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	audio, err := client.GenerateSpeech(context.Background(), "Bem-vindo a Eldoria", VoiceNova)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

// stubClient counts calls for cache tests.
type stubClient struct {
	narrativeCalls atomic.Int32
	imageCalls     atomic.Int32
	err            error
}

func (s *stubClient) GenerateNarrative(ctx context.Context, req NarrativeRequest) (string, error) {
	s.narrativeCalls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return "narrativa para " + req.Prompt, nil
}

func (s *stubClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	s.imageCalls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return "https://img.example/cached.png", nil
}

func (s *stubClient) GenerateSpeech(ctx context.Context, text string, voice Voice) ([]byte, error) {
	return []byte("audio"), nil
}

func TestCachedClient_NarrativeHit(t *testing.T) {
	stub := &stubClient{}
	cached := NewCachedClient(stub)
	ctx := context.Background()
	req := NarrativeRequest{Prompt: "descreva Meadowbrook"}

	first, err := cached.GenerateNarrative(ctx, req)
	require.NoError(t, err)
	second, err := cached.GenerateNarrative(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), stub.narrativeCalls.Load())

	// Different prompt misses
	_, err = cached.GenerateNarrative(ctx, NarrativeRequest{Prompt: "descreva Portus"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), stub.narrativeCalls.Load())
}

func TestCachedClient_ErrorsNotCached(t *testing.T) {
	stub := &stubClient{err: domain.ErrAIUnavailable}
	cached := NewCachedClient(stub)
	ctx := context.Background()

	_, err := cached.GenerateImage(ctx, "prompt")
	require.Error(t, err)
	_, err = cached.GenerateImage(ctx, "prompt")
	require.Error(t, err)

	assert.Equal(t, int32(2), stub.imageCalls.Load())
}
