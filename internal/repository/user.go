package repository

import (
	"context"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}
