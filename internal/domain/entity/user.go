package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a back-office admin user
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string         `gorm:"size:255;not null" json:"first_name"`
	LastName  string         `gorm:"size:255;not null" json:"last_name"`
	Role      string         `gorm:"size:50;default:admin" json:"role"`
	Login     string         `gorm:"size:100;unique;not null" json:"login"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
