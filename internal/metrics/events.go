package metrics

import (
	"context"

	"github.com/SMCNetwolf/LLMGame/internal/event"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CommandProcessed,
		event.QuestCompleted,
		event.CharacterCreated,
		event.CharacterLeveledUp,
		event.ContentFiltered,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CommandProcessed:
		payload, err := event.DecodePayload[event.CommandProcessedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CommandsProcessed.WithLabelValues(payload.Branch).Inc()

	case event.QuestCompleted:
		payload, err := event.DecodePayload[event.QuestCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		QuestsCompleted.WithLabelValues(payload.QuestID).Inc()
		ExperienceAwarded.Add(float64(payload.Experience))
		GoldAwarded.Add(float64(payload.Gold))

	case event.CharacterCreated:
		payload, err := event.DecodePayload[event.CharacterCreatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CharactersCreated.WithLabelValues(payload.Class).Inc()

	case event.CharacterLeveledUp:
		CharacterLevelUps.Inc()

	case event.ContentFiltered:
		payload, err := event.DecodePayload[event.ContentFilteredPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		FilterRejections.WithLabelValues(payload.Stage).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
