package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and fills in its generated id
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, external_id, created_at)
		VALUES ($1, NULLIF($2, ''), NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Username, user.ExternalID).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

// GetUserByID finds a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, username, COALESCE(external_id, ''), created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// GetUserByUsername finds a user by its unique username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, COALESCE(external_id, ''), created_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

// GetUserByExternalID finds a user by the chat platform id it arrived from
func (r *UserRepository) GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query := `
		SELECT id, username, COALESCE(external_id, ''), created_at
		FROM users
		WHERE external_id = $1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, externalID))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.ExternalID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &user, nil
}
