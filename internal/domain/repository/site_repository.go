package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	"github.com/lmf-services/backoffice-api/internal/domain/enum"
	"github.com/lmf-services/backoffice-api/pkg/pagination"
)

// SiteFilterParams narrows site listing
type SiteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	Status     *enum.SiteStatus
}

// SiteRepository defines the interface for site data operations
type SiteRepository interface {
	Create(ctx context.Context, site *entity.Site) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Site, error)
	// GetWithClient loads the site together with its owning client
	GetWithClient(ctx context.Context, id uuid.UUID) (*entity.Site, error)
	Update(ctx context.Context, site *entity.Site) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SiteFilterParams) ([]entity.Site, int64, error)
}
