package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmf-services/backoffice-api/internal/domain/enum"
)

// Client represents a billed customer, either a company or a private
// individual depending on Type
type Client struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Type        enum.ClientType `gorm:"size:20;not null;index" json:"type"`
	CompanyName *string         `gorm:"size:255" json:"company_name,omitempty"`
	LastName    *string         `gorm:"size:255" json:"last_name,omitempty"`
	FirstName   *string         `gorm:"size:255" json:"first_name,omitempty"`
	Email       *string         `gorm:"size:255" json:"email,omitempty"`
	Address     *string         `gorm:"size:255" json:"address,omitempty"`
	Zip         string          `gorm:"size:10;not null" json:"zip"`
	City        string          `gorm:"size:255;not null" json:"city"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Sites []Site `gorm:"foreignKey:ClientID" json:"sites,omitempty"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// DisplayName returns the billing name: the company name for an
// entreprise client, first and last name otherwise
func (c *Client) DisplayName() string {
	if c.Type == enum.ClientTypeEntreprise && c.CompanyName != nil {
		return *c.CompanyName
	}
	name := ""
	if c.FirstName != nil {
		name = *c.FirstName
	}
	if c.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *c.LastName
	}
	return name
}
