package character

import (
	"context"
	"fmt"
	"strings"

	"github.com/SMCNetwolf/LLMGame/internal/ai"
	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/engine"
	"github.com/SMCNetwolf/LLMGame/internal/event"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
	"github.com/SMCNetwolf/LLMGame/internal/naming"
	"github.com/SMCNetwolf/LLMGame/internal/repository"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

// Service manages character lifecycle and the session documents tied to
// them. Class rolls come from the world registry so created characters
// always match a registered class.
type Service struct {
	characters repository.Character
	states     repository.GameState
	world      *world.Registry
	engine     *engine.Engine
	bus        event.Bus
}

// NewService creates a new character Service
func NewService(characters repository.Character, states repository.GameState, w *world.Registry, e *engine.Engine) *Service {
	return &Service{
		characters: characters,
		states:     states,
		world:      w,
		engine:     e,
	}
}

// SetEventBus attaches an event bus. Without one the service simply
// does not publish.
func (s *Service) SetEventBus(bus event.Bus) {
	s.bus = bus
}

// CreateCharacter rolls a new character of the given class for the user
// and opens its game session at the starting location.
func (s *Service) CreateCharacter(ctx context.Context, userID int, name, className string) (*domain.Character, *domain.GameState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}

	class, ok := s.resolveClass(className)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownClass, className)
	}

	char := &domain.Character{
		UserID:       userID,
		Name:         name,
		Class:        class.ID,
		Level:        1,
		Health:       class.BaseStats.Health,
		MaxHealth:    class.BaseStats.Health,
		Mana:         class.BaseStats.Mana,
		MaxMana:      class.BaseStats.Mana,
		Strength:     class.BaseStats.Strength,
		Intelligence: class.BaseStats.Intelligence,
		Dexterity:    class.BaseStats.Dexterity,
	}
	if err := s.characters.CreateCharacter(ctx, char); err != nil {
		return nil, nil, err
	}

	state := s.engine.NewGameState(ctx, char)
	if err := s.states.CreateGameState(ctx, &state); err != nil {
		return nil, nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCharacterCreated,
		"character_id", char.ID, "user_id", userID, "class", class.ID)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewCharacterCreatedEvent(char.ID, class.ID)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.CharacterCreated, "error", err)
		}
	}
	return char, &state, nil
}

// resolveClass accepts either a class id or its display name, with
// accent and case folding.
func (s *Service) resolveClass(className string) (domain.CharacterClass, bool) {
	if class, ok := s.world.Class(naming.Fold(className)); ok {
		return class, true
	}
	for _, class := range s.world.Classes() {
		if naming.EqualFold(class.Name, className) {
			return class, true
		}
	}
	return domain.CharacterClass{}, false
}

// GetCharacter finds a character by id
func (s *Service) GetCharacter(ctx context.Context, id int) (*domain.Character, error) {
	return s.characters.GetCharacterByID(ctx, id)
}

// ListCharacters lists all characters owned by a user
func (s *Service) ListCharacters(ctx context.Context, userID int) ([]domain.Character, error) {
	return s.characters.GetCharactersByUser(ctx, userID)
}

// Session loads a character together with its game session
func (s *Service) Session(ctx context.Context, characterID int) (*domain.Character, *domain.GameState, error) {
	char, err := s.characters.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, nil, err
	}
	state, err := s.states.GetGameStateByCharacter(ctx, characterID)
	if err != nil {
		return nil, nil, err
	}
	return char, state, nil
}

// SaveSession persists the character and session after a command. Both
// are written so experience and inventory never drift apart.
func (s *Service) SaveSession(ctx context.Context, char *domain.Character, state *domain.GameState) error {
	if err := s.characters.UpdateCharacter(ctx, *char); err != nil {
		return err
	}
	if err := s.states.UpdateGameState(ctx, *state); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgSessionSaved, "character_id", char.ID)
	return nil
}

// DeleteCharacter removes a character; its session cascades away
func (s *Service) DeleteCharacter(ctx context.Context, id int) error {
	if err := s.characters.DeleteCharacter(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character_id", id)
	return nil
}

// Voice returns the narration voice for a character, keyed on its class
// display name.
func (s *Service) Voice(char *domain.Character) ai.Voice {
	if class, ok := s.world.Class(char.Class); ok {
		return ai.VoiceForClass(class.Name)
	}
	return ai.VoiceForClass(char.Class)
}
