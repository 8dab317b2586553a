package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankAccount holds the organization's creditor identity for invoicing:
// the IBAN plus the address block printed on the QR-bill
type BankAccount struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DisplayName    string         `gorm:"size:255;not null" json:"display_name"`
	BankName       string         `gorm:"size:255" json:"bank_name"`
	Currency       string         `gorm:"size:3;default:CHF" json:"currency"`
	IBAN           string         `gorm:"size:34;not null" json:"iban"`
	CompanyName    string         `gorm:"size:255;not null" json:"company_name"`
	Address        string         `gorm:"size:255" json:"address"`
	BuildingNumber string         `gorm:"size:16" json:"building_number"`
	Zip            string         `gorm:"size:10" json:"zip"`
	City           string         `gorm:"size:255" json:"city"`
	Country        string         `gorm:"size:2;default:CH" json:"country"`
	Active         bool           `gorm:"default:false;index" json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bank account
func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BankAccount model
func (BankAccount) TableName() string {
	return "comptes_bancaires"
}
