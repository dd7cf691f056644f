package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff é o barbeiro/administrador. Também é o usuário autenticado da API.
type Staff struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UnitID *uuid.UUID `gorm:"type:uuid" json:"unit_id"`
	Unit   *Unit      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"unit,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'barber'" json:"role"`

	// especialidades separadas por vírgula ("corte,barba,quimica")
	Specialties string `gorm:"size:255" json:"specialties"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CanAcceptBookings: precisa estar ativo e lotado em uma unidade.
func (s *Staff) CanAcceptBookings() bool {
	return s.Active && s.UnitID != nil
}
