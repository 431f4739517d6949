package event

import (
	"context"
	"time"

	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// DefaultResilientConfig returns a ResilientConfig with the standard retry policy
func DefaultResilientConfig(deadLetter *DeadLetterWriter) ResilientConfig {
	return ResilientConfig{
		MaxRetries: RetryMaxAttempts,
		RetryDelay: RetryInitialDelaySeconds * time.Second,
		DeadLetter: deadLetter,
	}
}

// ResilientPublisher wraps an event Bus with retry logic and dead-letter capture.
// A failed publish is retried in the background with exponential backoff; events
// that exhaust all retries are appended to the dead-letter file.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. On failure it starts a background retry
// loop and returns nil: callers are decoupled from the retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn("event_publish_failed_retrying",
		"event_type", event.Type,
		"error", err,
		"max_retries", p.config.MaxRetries)

	// The request context may be cancelled before retries finish, so the
	// retry loop runs detached.
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info("event_published_after_retry",
				"event_type", event.Type,
				"attempt", attempt)
			return
		}

		log.Warn("event_retry_failed",
			"event_type", event.Type,
			"attempt", attempt,
			"error", lastErr)
	}

	if p.config.DeadLetter == nil {
		log.Error("event_dropped_no_dead_letter",
			"event_type", event.Type,
			"error", lastErr)
		return
	}

	if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		log.Error("event_dead_letter_write_failed",
			"event_type", event.Type,
			"error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
