package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	"github.com/lmf-services/backoffice-api/internal/domain/repository"
	"github.com/lmf-services/backoffice-api/internal/invoice"
	"github.com/lmf-services/backoffice-api/pkg/apperror"
)

// InvoiceService resolves the invoice parties from stored records and
// drives the PDF composer.
type InvoiceService struct {
	composer    *invoice.Composer
	accountRepo repository.BankAccountRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(composer *invoice.Composer, accountRepo repository.BankAccountRepository, clientRepo repository.ClientRepository) *InvoiceService {
	return &InvoiceService{
		composer:    composer,
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
	}
}

// DebtorInput is the invoice recipient, either referenced by client ID
// or supplied inline.
type DebtorInput struct {
	ClientID       *uuid.UUID
	Name           string
	Address        string
	BuildingNumber string
	Zip            string
	City           string
	Country        string
}

// LineItemInput is one billed row as entered on the form.
type LineItemInput struct {
	Position     string
	Hours        string
	Description  string
	PricePerHour decimal.Decimal
	Total        decimal.Decimal
}

// GenerateInvoiceInput represents the input for generating an invoice PDF
type GenerateInvoiceInput struct {
	BankAccountID   *uuid.UUID
	Debtor          DebtorInput
	InvoiceNumber   string
	InvoiceDate     time.Time
	Reference       string
	Items           []LineItemInput
	ProRataPercent  decimal.Decimal
	RabaisPercent   decimal.Decimal
	ShowAdjustments bool
	VATRatePercent  decimal.Decimal

	// Pre-aggregated totals, all set together when the caller computed
	// them client-side.
	Subtotal  *decimal.Decimal
	VATAmount *decimal.Decimal
	Total     *decimal.Decimal
}

// GeneratedInvoice is the finished document with its download filename.
type GeneratedInvoice struct {
	Filename string
	Content  []byte
}

// GenerateInvoice builds the invoice request and renders the PDF.
func (s *InvoiceService) GenerateInvoice(ctx context.Context, input *GenerateInvoiceInput) (*GeneratedInvoice, error) {
	account, err := s.resolveAccount(ctx, input.BankAccountID)
	if err != nil {
		return nil, err
	}

	debtor, err := s.resolveDebtor(ctx, &input.Debtor)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.LineItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = invoice.LineItem{
			Position:     item.Position,
			Hours:        item.Hours,
			Description:  item.Description,
			PricePerHour: item.PricePerHour,
			Total:        item.Total,
		}
	}

	adjustments, err := invoice.NewAdjustments(input.ProRataPercent, input.RabaisPercent, input.ShowAdjustments)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	totals := invoice.ComputedTotals(input.VATRatePercent)
	if input.Subtotal != nil || input.VATAmount != nil || input.Total != nil {
		if input.Subtotal == nil || input.VATAmount == nil || input.Total == nil {
			return nil, apperror.NewBadRequestError("Les totaux pré-calculés doivent être fournis ensemble")
		}
		totals = invoice.PreAggregatedTotals(*input.Subtotal, input.VATRatePercent, *input.VATAmount, *input.Total)
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	req := invoice.Request{
		Creditor: invoice.Party{
			Name:           account.CompanyName,
			Address:        account.Address,
			BuildingNumber: account.BuildingNumber,
			Zip:            account.Zip,
			City:           account.City,
			Country:        account.Country,
			Account:        account.IBAN,
		},
		Debtor:        debtor,
		Currency:      account.Currency,
		Reference:     input.Reference,
		InvoiceNumber: input.InvoiceNumber,
		InvoiceDate:   invoiceDate,
		Items:         items,
		Adjustments:   adjustments,
		Totals:        totals,
	}

	content, err := s.composer.Generate(req)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrMissingField),
			errors.Is(err, invoice.ErrInvalidAdjustment),
			errors.Is(err, invoice.ErrLayoutOverflow),
			errors.Is(err, invoice.ErrPaymentSlip):
			return nil, apperror.NewBadRequestError(err.Error())
		default:
			return nil, apperror.NewInternalError("La génération de la facture a échoué")
		}
	}

	return &GeneratedInvoice{
		Filename: fmt.Sprintf("facture-%s.pdf", input.InvoiceNumber),
		Content:  content,
	}, nil
}

func (s *InvoiceService) resolveAccount(ctx context.Context, id *uuid.UUID) (*entity.BankAccount, error) {
	if id != nil {
		account, err := s.accountRepo.GetByID(ctx, *id)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Compte bancaire")
		}
		return account, nil
	}

	account, err := s.accountRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewBadRequestError("Aucun compte bancaire actif")
	}
	return account, nil
}

func (s *InvoiceService) resolveDebtor(ctx context.Context, input *DebtorInput) (invoice.Party, error) {
	if input.ClientID == nil {
		return invoice.Party{
			Name:           input.Name,
			Address:        input.Address,
			BuildingNumber: input.BuildingNumber,
			Zip:            input.Zip,
			City:           input.City,
			Country:        defaultCountry(input.Country),
		}, nil
	}

	client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
	if err != nil {
		return invoice.Party{}, err
	}
	if client == nil {
		return invoice.Party{}, apperror.NewNotFoundError("Client")
	}

	party := invoice.Party{
		Name:    client.DisplayName(),
		Zip:     client.Zip,
		City:    client.City,
		Country: "CH",
	}
	if client.Address != nil {
		party.Address = *client.Address
	}
	// Inline fields override the stored record when supplied.
	if input.Address != "" {
		party.Address = input.Address
	}
	if input.BuildingNumber != "" {
		party.BuildingNumber = input.BuildingNumber
	}
	if input.Country != "" {
		party.Country = input.Country
	}
	return party, nil
}

func defaultCountry(country string) string {
	if country == "" {
		return "CH"
	}
	return country
}
