package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
)

// BankAccountRepository defines the interface for bank account data operations
type BankAccountRepository interface {
	Create(ctx context.Context, account *entity.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error)
	// GetActive returns the account marked active, nil when none is
	GetActive(ctx context.Context) (*entity.BankAccount, error)
	Update(ctx context.Context, account *entity.BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.BankAccount, error)
	// SetActive marks one account active and clears the flag on the others
	SetActive(ctx context.Context, id uuid.UUID) error
}
