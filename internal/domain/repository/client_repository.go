package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	"github.com/lmf-services/backoffice-api/internal/domain/enum"
	"github.com/lmf-services/backoffice-api/pkg/pagination"
)

// ClientFilterParams narrows client listing
type ClientFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.ClientType
	// OrderRecent sorts by last update instead of name
	OrderRecent bool
}

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// DeleteWithSites removes the client and all its sites in one transaction
	DeleteWithSites(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ClientFilterParams) ([]entity.Client, int64, error)
}
