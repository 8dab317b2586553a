package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmf-services/backoffice-api/internal/domain/entity"
	domainRepo "github.com/lmf-services/backoffice-api/internal/domain/repository"
)

type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) domainRepo.BankAccountRepository {
	return &bankAccountRepository{db: db}
}

func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *bankAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	var account entity.BankAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *bankAccountRepository) GetActive(ctx context.Context) (*entity.BankAccount, error) {
	var account entity.BankAccount
	err := r.db.WithContext(ctx).First(&account, "active = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *bankAccountRepository) Update(ctx context.Context, account *entity.BankAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *bankAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BankAccount{}, "id = ?", id).Error
}

func (r *bankAccountRepository) List(ctx context.Context) ([]entity.BankAccount, error) {
	var accounts []entity.BankAccount
	err := r.db.WithContext(ctx).Order("display_name ASC").Find(&accounts).Error
	return accounts, err
}

func (r *bankAccountRepository) SetActive(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.BankAccount{}).
			Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.BankAccount{}).
			Where("id = ?", id).
			Update("active", true).Error
	})
}
