package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// GameStateRepository implements the game session repository for
// PostgreSQL. Inventory, quest progress and the clock are stored as
// JSONB documents and always written together.
type GameStateRepository struct {
	db *pgxpool.Pool
}

// NewGameStateRepository creates a new GameStateRepository
func NewGameStateRepository(db *pgxpool.Pool) *GameStateRepository {
	return &GameStateRepository{db: db}
}

// CreateGameState inserts a new session and fills in its generated id
func (r *GameStateRepository) CreateGameState(ctx context.Context, state *domain.GameState) error {
	inv, progress, clock, err := marshalState(state)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO game_states (character_id, current_location, inventory, quest_progress, clock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query, state.CharacterID, state.CurrentLocation, inv, progress, clock).
		Scan(&state.ID, &state.CreatedAt, &state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertGameState, err)
	}
	return nil
}

// GetGameStateByID finds a session by primary key
func (r *GameStateRepository) GetGameStateByID(ctx context.Context, id int) (*domain.GameState, error) {
	query := `
		SELECT id, character_id, current_location, inventory, quest_progress, clock, created_at, updated_at
		FROM game_states
		WHERE id = $1
	`
	return scanGameState(ctx, r.db.QueryRow(ctx, query, id))
}

// GetGameStateByCharacter finds the session owned by a character
func (r *GameStateRepository) GetGameStateByCharacter(ctx context.Context, characterID int) (*domain.GameState, error) {
	query := `
		SELECT id, character_id, current_location, inventory, quest_progress, clock, created_at, updated_at
		FROM game_states
		WHERE character_id = $1
	`
	return scanGameState(ctx, r.db.QueryRow(ctx, query, characterID))
}

// UpdateGameState persists the whole session document
func (r *GameStateRepository) UpdateGameState(ctx context.Context, state domain.GameState) error {
	inv, progress, clock, err := marshalState(&state)
	if err != nil {
		return err
	}

	query := `
		UPDATE game_states
		SET current_location = $1, inventory = $2, quest_progress = $3, clock = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, state.CurrentLocation, inv, progress, clock, state.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGameState, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGameStateNotFound
	}
	return nil
}

// DeleteGameState removes a session
func (r *GameStateRepository) DeleteGameState(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM game_states WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteGameState, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGameStateNotFound
	}
	return nil
}

func marshalState(state *domain.GameState) (inv, progress, clock []byte, err error) {
	if inv, err = json.Marshal(state.Inventory); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}
	if progress, err = json.Marshal(state.QuestProgress); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}
	if clock, err = json.Marshal(state.Clock); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}
	return inv, progress, clock, nil
}

// scanGameState reads a session row. A malformed JSONB document is not
// fatal: the field is left at its zero value, logged, and the engine
// re-initializes it before the next command.
func scanGameState(ctx context.Context, row pgx.Row) (*domain.GameState, error) {
	var (
		inv, progress, clock json.RawMessage
		result               domain.GameState
	)

	err := row.Scan(
		&result.ID, &result.CharacterID, &result.CurrentLocation,
		&inv, &progress, &clock,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGameStateNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGameState, err)
	}

	log := logger.FromContext(ctx)
	if err := json.Unmarshal(inv, &result.Inventory); err != nil {
		log.Warn(LogMsgStateBlobMalformed, "field", "inventory", "game_state_id", result.ID, "error", err)
		result.Inventory = domain.Inventory{}
	}
	if err := json.Unmarshal(progress, &result.QuestProgress); err != nil {
		log.Warn(LogMsgStateBlobMalformed, "field", "quest_progress", "game_state_id", result.ID, "error", err)
		result.QuestProgress = domain.QuestProgress{}
	}
	if err := json.Unmarshal(clock, &result.Clock); err != nil {
		log.Warn(LogMsgStateBlobMalformed, "field", "clock", "game_state_id", result.ID, "error", err)
		result.Clock = domain.Clock{}
	}
	return &result, nil
}
