package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente simples, sem login. O telefone (somente dígitos) é a chave
// natural de deduplicação; o nome é o fallback quando não há telefone.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;index" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	NationalID string     `gorm:"size:20" json:"national_id"`
	BirthDate  *time.Time `json:"birth_date"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
