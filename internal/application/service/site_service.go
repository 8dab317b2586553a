package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	"github.com/lmf-services/backoffice-api/internal/domain/enum"
	"github.com/lmf-services/backoffice-api/internal/domain/repository"
	"github.com/lmf-services/backoffice-api/pkg/apperror"
	"github.com/lmf-services/backoffice-api/pkg/pagination"
)

// SiteService handles work-site operations
type SiteService struct {
	siteRepo   repository.SiteRepository
	clientRepo repository.ClientRepository
}

// NewSiteService creates a new site service
func NewSiteService(siteRepo repository.SiteRepository, clientRepo repository.ClientRepository) *SiteService {
	return &SiteService{siteRepo: siteRepo, clientRepo: clientRepo}
}

// SiteInput represents the input for creating or updating a site
type SiteInput struct {
	ClientID  uuid.UUID
	Name      string
	Hours     string
	Headcount int
	Status    enum.SiteStatus
	Address   string
	Zip       string
	City      string
	UserID    uuid.UUID
}

// CreateSite creates a new site for an existing client
func (s *SiteService) CreateSite(ctx context.Context, input *SiteInput) (*entity.Site, error) {
	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Statut de chantier invalide")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	site := &entity.Site{
		ClientID:  input.ClientID,
		Name:      input.Name,
		Hours:     input.Hours,
		Headcount: input.Headcount,
		Status:    input.Status,
		Address:   input.Address,
		Zip:       input.Zip,
		City:      input.City,
		CreatedBy: input.UserID,
		UpdatedBy: input.UserID,
	}

	if err := s.siteRepo.Create(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

// GetSite retrieves a site with its client
func (s *SiteService) GetSite(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	site, err := s.siteRepo.GetWithClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperror.NewNotFoundError("Site")
	}
	return site, nil
}

// ListSitesInput represents the input for listing sites
type ListSitesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	Status     *enum.SiteStatus
}

// ListSites lists sites with filtering
func (s *SiteService) ListSites(ctx context.Context, input *ListSitesInput) (*pagination.PaginatedResult[entity.Site], error) {
	params := &repository.SiteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		ClientID:   input.ClientID,
		Status:     input.Status,
	}

	sites, total, err := s.siteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sites, pag), nil
}

// UpdateSite updates an existing site
func (s *SiteService) UpdateSite(ctx context.Context, id uuid.UUID, input *SiteInput) (*entity.Site, error) {
	site, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperror.NewNotFoundError("Site")
	}

	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Statut de chantier invalide")
	}

	if input.ClientID != site.ClientID {
		client, err := s.clientRepo.GetByID(ctx, input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
	}

	site.ClientID = input.ClientID
	site.Name = input.Name
	site.Hours = input.Hours
	site.Headcount = input.Headcount
	site.Status = input.Status
	site.Address = input.Address
	site.Zip = input.Zip
	site.City = input.City
	site.UpdatedBy = input.UserID

	if err := s.siteRepo.Update(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

// DeleteSite deletes a site
func (s *SiteService) DeleteSite(ctx context.Context, id uuid.UUID) error {
	site, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if site == nil {
		return apperror.NewNotFoundError("Site")
	}

	return s.siteRepo.Delete(ctx, id)
}
