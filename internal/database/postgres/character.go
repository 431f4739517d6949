package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

const characterColumns = `id, user_id, name, character_class, level, experience,
	health, max_health, mana, max_mana, strength, intelligence, dexterity, created_at`

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CreateCharacter inserts a new character and fills in its generated id
func (r *CharacterRepository) CreateCharacter(ctx context.Context, char *domain.Character) error {
	query := `
		INSERT INTO characters (user_id, name, character_class, level, experience,
			health, max_health, mana, max_mana, strength, intelligence, dexterity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		char.UserID, char.Name, char.Class, char.Level, char.Experience,
		char.Health, char.MaxHealth, char.Mana, char.MaxMana,
		char.Strength, char.Intelligence, char.Dexterity,
	).Scan(&char.ID, &char.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrCharacterExists, char.Name)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCharacter, err)
	}
	return nil
}

// GetCharacterByID finds a character by primary key
func (r *CharacterRepository) GetCharacterByID(ctx context.Context, id int) (*domain.Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM characters WHERE id = $1`, characterColumns)
	return scanCharacter(r.db.QueryRow(ctx, query, id))
}

// GetCharacterByName finds a user's character by name
func (r *CharacterRepository) GetCharacterByName(ctx context.Context, userID int, name string) (*domain.Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM characters WHERE user_id = $1 AND name = $2`, characterColumns)
	return scanCharacter(r.db.QueryRow(ctx, query, userID, name))
}

// GetCharactersByUser lists all characters owned by a user
func (r *CharacterRepository) GetCharactersByUser(ctx context.Context, userID int) ([]domain.Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM characters WHERE user_id = $1 ORDER BY created_at`, characterColumns)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCharacters, err)
	}
	defer rows.Close()

	var chars []domain.Character
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		chars = append(chars, *char)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCharacters, err)
	}
	return chars, nil
}

// UpdateCharacter persists the mutable fields of a character
func (r *CharacterRepository) UpdateCharacter(ctx context.Context, char domain.Character) error {
	query := `
		UPDATE characters
		SET level = $1, experience = $2, health = $3, max_health = $4,
			mana = $5, max_mana = $6, strength = $7, intelligence = $8, dexterity = $9
		WHERE id = $10
	`
	tag, err := r.db.Exec(ctx, query,
		char.Level, char.Experience, char.Health, char.MaxHealth,
		char.Mana, char.MaxMana, char.Strength, char.Intelligence, char.Dexterity,
		char.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// DeleteCharacter removes a character; its game state cascades
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var char domain.Character
	err := row.Scan(
		&char.ID, &char.UserID, &char.Name, &char.Class, &char.Level, &char.Experience,
		&char.Health, &char.MaxHealth, &char.Mana, &char.MaxMana,
		&char.Strength, &char.Intelligence, &char.Dexterity, &char.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return &char, nil
}
