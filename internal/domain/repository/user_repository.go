package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
}
