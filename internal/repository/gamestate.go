package repository

import (
	"context"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// GameState defines the interface for game session persistence. The
// inventory, quest progress and clock travel as one document; partial
// writes would let the session drift out of sync with itself.
type GameState interface {
	CreateGameState(ctx context.Context, state *domain.GameState) error
	GetGameStateByID(ctx context.Context, id int) (*domain.GameState, error)
	GetGameStateByCharacter(ctx context.Context, characterID int) (*domain.GameState, error)
	UpdateGameState(ctx context.Context, state domain.GameState) error
	DeleteGameState(ctx context.Context, id int) error
}
