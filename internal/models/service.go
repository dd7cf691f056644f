package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	Active      bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrServicePrice    = errors.New("preço deve ser maior que zero")
	ErrServiceDuration = errors.New("duração deve ser maior que zero")
)

// NewService valida os invariantes do catálogo na construção.
func NewService(name, description string, price decimal.Decimal, durationMin int) (*Service, error) {
	if !price.IsPositive() {
		return nil, ErrServicePrice
	}
	if durationMin <= 0 {
		return nil, ErrServiceDuration
	}

	return &Service{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		DurationMin: durationMin,
		Active:      true,
	}, nil
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if !s.Price.IsPositive() {
		return ErrServicePrice
	}
	if s.DurationMin <= 0 {
		return ErrServiceDuration
	}
	return nil
}
