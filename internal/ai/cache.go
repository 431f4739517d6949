package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// CachedClient wraps a Client with an expiring LRU over narrative and
// image generations. Speech is never cached; clips are stored by the
// caller after synthesis.
type CachedClient struct {
	inner      Client
	narratives *expirable.LRU[string, string]
	images     *expirable.LRU[string, string]
}

// NewCachedClient wraps the client with caches of the default size and
// TTL.
func NewCachedClient(inner Client) *CachedClient {
	return &CachedClient{
		inner:      inner,
		narratives: expirable.NewLRU[string, string](DefaultCacheSize, nil, DefaultCacheTTL),
		images:     expirable.NewLRU[string, string](DefaultCacheSize, nil, DefaultCacheTTL),
	}
}

func (c *CachedClient) GenerateNarrative(ctx context.Context, req NarrativeRequest) (string, error) {
	key := cacheKey(req.SystemMessage, req.Prompt)
	if cached, ok := c.narratives.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "kind", "narrative")
		return cached, nil
	}

	text, err := c.inner.GenerateNarrative(ctx, req)
	if err != nil {
		return "", err
	}
	c.narratives.Add(key, text)
	return text, nil
}

func (c *CachedClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	key := cacheKey("image", prompt)
	if cached, ok := c.images.Get(key); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "kind", "image")
		return cached, nil
	}

	url, err := c.inner.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}
	c.images.Add(key, url)
	return url, nil
}

func (c *CachedClient) GenerateSpeech(ctx context.Context, text string, voice Voice) ([]byte, error) {
	return c.inner.GenerateSpeech(ctx, text, voice)
}

func cacheKey(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

var _ Client = (*CachedClient)(nil)
