package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmf-services/backoffice-api/internal/domain/enum"
)

// Site represents a work site (chantier) tied to a client
type Site struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Hours     string          `gorm:"size:50" json:"hours"`
	Headcount int             `gorm:"default:0" json:"headcount"`
	Status    enum.SiteStatus `gorm:"size:20;not null;index" json:"status"`
	Address   string          `gorm:"size:255" json:"address"`
	Zip       string          `gorm:"size:10" json:"zip"`
	City      string          `gorm:"size:255" json:"city"`
	CreatedBy uuid.UUID       `gorm:"type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID       `gorm:"type:uuid" json:"updated_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new site
func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Site model
func (Site) TableName() string {
	return "sites"
}
