package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	domainRepo "github.com/lmf-services/backoffice-api/internal/domain/repository"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) DeleteWithSites(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Site{}, "client_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Client{}, "id = ?", id).Error
	})
}

func (r *clientRepository) List(ctx context.Context, params *domainRepo.ClientFilterParams) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Client{})

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"company_name ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR address ILIKE ? OR city ILIKE ? OR zip ILIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.OrderRecent {
		query = query.Order("updated_at DESC")
	} else {
		query = query.Order("company_name ASC, last_name ASC")
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Find(&clients).Error

	return clients, total, err
}
