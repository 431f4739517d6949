package repository

import (
	"context"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// Media defines the interface for generated illustration and narration
// records.
type Media interface {
	SaveGameImage(ctx context.Context, image *domain.GameImage) error
	ListGameImages(ctx context.Context, gameStateID, limit int) ([]domain.GameImage, error)
	SaveCharacterAudio(ctx context.Context, audio *domain.CharacterAudio) error
	ListCharacterAudio(ctx context.Context, characterID, limit int) ([]domain.CharacterAudio, error)
}
