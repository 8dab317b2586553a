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

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ClientInput represents the input for creating or updating a client
type ClientInput struct {
	Type        enum.ClientType
	CompanyName *string
	LastName    *string
	FirstName   *string
	Email       *string
	Address     *string
	Zip         string
	City        string
}

// validate enforces the per-type required fields: an entreprise client
// needs a company name, a particulier needs a first name
func (in *ClientInput) validate() error {
	if !in.Type.IsValid() {
		return apperror.NewBadRequestError("Type de client invalide")
	}
	if in.Zip == "" || in.City == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "zip", Message: "NPA et ville sont requis"},
		})
	}
	if in.Type == enum.ClientTypeEntreprise && (in.CompanyName == nil || *in.CompanyName == "") {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "company_name", Message: "Requis pour un client entreprise"},
		})
	}
	if in.Type == enum.ClientTypeParticulier && (in.FirstName == nil || *in.FirstName == "") {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "first_name", Message: "Requis pour un client particulier"},
		})
	}
	return nil
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *ClientInput) (*entity.Client, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	client := &entity.Client{
		Type:        input.Type,
		CompanyName: input.CompanyName,
		LastName:    input.LastName,
		FirstName:   input.FirstName,
		Email:       input.Email,
		Address:     input.Address,
		Zip:         input.Zip,
		City:        input.City,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClientsInput represents the input for listing clients
type ListClientsInput struct {
	Pagination  *pagination.PaginationParams
	Search      string
	Type        *enum.ClientType
	OrderRecent bool
}

// ListClients lists clients with filtering
func (s *ClientService) ListClients(ctx context.Context, input *ListClientsInput) (*pagination.PaginatedResult[entity.Client], error) {
	params := &repository.ClientFilterParams{
		Pagination:  input.Pagination,
		Search:      input.Search,
		Type:        input.Type,
		OrderRecent: input.OrderRecent,
	}

	clients, total, err := s.clientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *ClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	client.Type = input.Type
	client.CompanyName = input.CompanyName
	client.LastName = input.LastName
	client.FirstName = input.FirstName
	client.Email = input.Email
	client.Address = input.Address
	client.Zip = input.Zip
	client.City = input.City

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client together with its sites
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	return s.clientRepo.DeleteWithSites(ctx, id)
}
