package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	CommandProcessed   Type = "command.processed"
	QuestCompleted     Type = "quest.completed"
	CharacterCreated   Type = "character.created"
	CharacterLeveledUp Type = "character.leveled_up"
	ContentFiltered    Type = "content.filtered"
)

// Typed event payloads for type safety

// CommandProcessedPayloadV1 is the typed payload for processed commands
type CommandProcessedPayloadV1 struct {
	CharacterID int    `json:"character_id"`
	Branch      string `json:"branch"`
	Timestamp   int64  `json:"timestamp"`
}

// QuestCompletedPayloadV1 is the typed payload for quest completions
type QuestCompletedPayloadV1 struct {
	CharacterID int    `json:"character_id"`
	QuestID     string `json:"quest_id"`
	Experience  int    `json:"experience"`
	Gold        int    `json:"gold"`
	Timestamp   int64  `json:"timestamp"`
}

// CharacterCreatedPayloadV1 is the typed payload for character creation
type CharacterCreatedPayloadV1 struct {
	CharacterID int    `json:"character_id"`
	Class       string `json:"class"`
	Timestamp   int64  `json:"timestamp"`
}

// CharacterLeveledUpPayloadV1 is the typed payload for level-ups
type CharacterLeveledUpPayloadV1 struct {
	CharacterID int   `json:"character_id"`
	Level       int   `json:"level"`
	Timestamp   int64 `json:"timestamp"`
}

// ContentFilteredPayloadV1 is the typed payload for filter rejections
type ContentFilteredPayloadV1 struct {
	CharacterID int    `json:"character_id"`
	Stage       string `json:"stage"` // "input", "response" or "image"
	Timestamp   int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCommandProcessedEvent creates a new command processed event
func NewCommandProcessedEvent(characterID int, branch string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CommandProcessed,
		Payload: CommandProcessedPayloadV1{
			CharacterID: characterID,
			Branch:      branch,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewQuestCompletedEvent creates a new quest completed event
func NewQuestCompletedEvent(characterID int, questID string, experience, gold int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: QuestCompletedPayloadV1{
			CharacterID: characterID,
			QuestID:     questID,
			Experience:  experience,
			Gold:        gold,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewCharacterCreatedEvent creates a new character created event
func NewCharacterCreatedEvent(characterID int, class string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterCreated,
		Payload: CharacterCreatedPayloadV1{
			CharacterID: characterID,
			Class:       class,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewCharacterLeveledUpEvent creates a new level-up event
func NewCharacterLeveledUpEvent(characterID, level int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterLeveledUp,
		Payload: CharacterLeveledUpPayloadV1{
			CharacterID: characterID,
			Level:       level,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewContentFilteredEvent creates a new filter rejection event
func NewContentFilteredEvent(characterID int, stage string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContentFiltered,
		Payload: ContentFilteredPayloadV1{
			CharacterID: characterID,
			Stage:       stage,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
