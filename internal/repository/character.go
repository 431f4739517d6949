package repository

import (
	"context"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// Character defines the interface for character persistence
type Character interface {
	CreateCharacter(ctx context.Context, char *domain.Character) error
	GetCharacterByID(ctx context.Context, id int) (*domain.Character, error)
	GetCharacterByName(ctx context.Context, userID int, name string) (*domain.Character, error)
	GetCharactersByUser(ctx context.Context, userID int) ([]domain.Character, error)
	UpdateCharacter(ctx context.Context, char domain.Character) error
	DeleteCharacter(ctx context.Context, id int) error
}
