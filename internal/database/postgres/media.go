package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// MediaRepository implements persistence for generated illustrations
// and narration clips.
type MediaRepository struct {
	db *pgxpool.Pool
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{db: db}
}

// SaveGameImage records a generated scene illustration
func (r *MediaRepository) SaveGameImage(ctx context.Context, image *domain.GameImage) error {
	query := `
		INSERT INTO game_images (game_state_id, prompt, url, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, image.GameStateID, image.Prompt, image.URL).
		Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertImage, err)
	}
	return nil
}

// ListGameImages returns the most recent illustrations for a session
func (r *MediaRepository) ListGameImages(ctx context.Context, gameStateID, limit int) ([]domain.GameImage, error) {
	query := `
		SELECT id, game_state_id, prompt, url, created_at
		FROM game_images
		WHERE game_state_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, gameStateID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListImages, err)
	}
	defer rows.Close()

	var images []domain.GameImage
	for rows.Next() {
		var img domain.GameImage
		if err := rows.Scan(&img.ID, &img.GameStateID, &img.Prompt, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListImages, err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListImages, err)
	}
	return images, nil
}

// SaveCharacterAudio records a generated narration clip
func (r *MediaRepository) SaveCharacterAudio(ctx context.Context, audio *domain.CharacterAudio) error {
	query := `
		INSERT INTO character_audio (character_id, voice, text, url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, audio.CharacterID, audio.Voice, audio.Text, audio.URL).
		Scan(&audio.ID, &audio.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAudio, err)
	}
	return nil
}

// ListCharacterAudio returns the most recent narration clips for a character
func (r *MediaRepository) ListCharacterAudio(ctx context.Context, characterID, limit int) ([]domain.CharacterAudio, error) {
	query := `
		SELECT id, character_id, voice, text, url, created_at
		FROM character_audio
		WHERE character_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAudio, err)
	}
	defer rows.Close()

	var clips []domain.CharacterAudio
	for rows.Next() {
		var clip domain.CharacterAudio
		if err := rows.Scan(&clip.ID, &clip.CharacterID, &clip.Voice, &clip.Text, &clip.URL, &clip.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAudio, err)
		}
		clips = append(clips, clip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAudio, err)
	}
	return clips, nil
}
