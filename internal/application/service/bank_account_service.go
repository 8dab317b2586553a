package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	"github.com/lmf-services/backoffice-api/internal/domain/repository"
	"github.com/lmf-services/backoffice-api/pkg/apperror"
	"github.com/lmf-services/backoffice-api/pkg/qrbill"
)

// BankAccountService handles bank account operations
type BankAccountService struct {
	accountRepo repository.BankAccountRepository
}

// NewBankAccountService creates a new bank account service
func NewBankAccountService(accountRepo repository.BankAccountRepository) *BankAccountService {
	return &BankAccountService{accountRepo: accountRepo}
}

// BankAccountInput represents the input for creating or updating a bank account
type BankAccountInput struct {
	DisplayName    string
	BankName       string
	Currency       string
	IBAN           string
	CompanyName    string
	Address        string
	BuildingNumber string
	Zip            string
	City           string
	Country        string
}

func (i *BankAccountInput) validate() error {
	if i.DisplayName == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "display_name", Message: "Le nom du compte est requis"},
		})
	}
	if i.CompanyName == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "company_name", Message: "La raison sociale est requise"},
		})
	}
	if _, err := qrbill.ValidateIBAN(i.IBAN); err != nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "iban", Message: "IBAN invalide : seuls les comptes CH ou LI sont acceptés"},
		})
	}
	return nil
}

// CreateBankAccount creates a new bank account
func (s *BankAccountService) CreateBankAccount(ctx context.Context, input *BankAccountInput) (*entity.BankAccount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "CHF"
	}
	country := input.Country
	if country == "" {
		country = "CH"
	}

	account := &entity.BankAccount{
		DisplayName:    input.DisplayName,
		BankName:       input.BankName,
		Currency:       currency,
		IBAN:           input.IBAN,
		CompanyName:    input.CompanyName,
		Address:        input.Address,
		BuildingNumber: input.BuildingNumber,
		Zip:            input.Zip,
		City:           input.City,
		Country:        country,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetBankAccount retrieves a bank account by ID
func (s *BankAccountService) GetBankAccount(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Compte bancaire")
	}
	return account, nil
}

// ListBankAccounts lists all bank accounts
func (s *BankAccountService) ListBankAccounts(ctx context.Context) ([]entity.BankAccount, error) {
	return s.accountRepo.List(ctx)
}

// UpdateBankAccount updates an existing bank account
func (s *BankAccountService) UpdateBankAccount(ctx context.Context, id uuid.UUID, input *BankAccountInput) (*entity.BankAccount, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Compte bancaire")
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	account.DisplayName = input.DisplayName
	account.BankName = input.BankName
	if input.Currency != "" {
		account.Currency = input.Currency
	}
	account.IBAN = input.IBAN
	account.CompanyName = input.CompanyName
	account.Address = input.Address
	account.BuildingNumber = input.BuildingNumber
	account.Zip = input.Zip
	account.City = input.City
	if input.Country != "" {
		account.Country = input.Country
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// SetActiveBankAccount marks an account as the active one used for invoicing
func (s *BankAccountService) SetActiveBankAccount(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Compte bancaire")
	}

	if err := s.accountRepo.SetActive(ctx, id); err != nil {
		return nil, err
	}
	account.Active = true
	return account, nil
}

// DeleteBankAccount deletes a bank account
func (s *BankAccountService) DeleteBankAccount(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NewNotFoundError("Compte bancaire")
	}
	if account.Active {
		return apperror.NewBadRequestError("Impossible de supprimer le compte actif")
	}

	return s.accountRepo.Delete(ctx, id)
}
