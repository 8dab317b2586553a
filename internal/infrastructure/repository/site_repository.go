package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	domainRepo "github.com/lmf-services/backoffice-api/internal/domain/repository"
)

type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) domainRepo.SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(ctx context.Context, site *entity.Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *siteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	var site entity.Site
	err := r.db.WithContext(ctx).First(&site, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &site, err
}

func (r *siteRepository) GetWithClient(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	var site entity.Site
	err := r.db.WithContext(ctx).Preload("Client").First(&site, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &site, err
}

func (r *siteRepository) Update(ctx context.Context, site *entity.Site) error {
	return r.db.WithContext(ctx).Save(site).Error
}

func (r *siteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Site{}, "id = ?", id).Error
}

func (r *siteRepository) List(ctx context.Context, params *domainRepo.SiteFilterParams) ([]entity.Site, int64, error) {
	var sites []entity.Site
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Site{})

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR address ILIKE ? OR city ILIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Client").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("updated_at DESC").
		Find(&sites).Error

	return sites, total, err
}
