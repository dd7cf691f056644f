package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking é a entidade central: um compromisso de um barbeiro com um
// cliente para um ou mais serviços. Nomes de cliente/barbeiro são
// snapshots desnormalizados: edições posteriores no cadastro não podem
// alterar o histórico.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID    uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	ClientName  string    `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string    `gorm:"size:100" json:"client_email"`
	ClientPhone string    `gorm:"size:20" json:"client_phone"`

	StaffID   uuid.UUID `gorm:"type:uuid;index" json:"staff_id"`
	StaffName string    `gorm:"size:100;not null" json:"staff_name"`

	UnitID uuid.UUID `gorm:"type:uuid" json:"unit_id"`

	// Items é a coleção ordenada de snapshots de serviço; sempre >= 1.
	Items []BookingItem `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;" json:"items"`

	StartTime   time.Time `gorm:"index" json:"start_time"`
	DurationMin int       `gorm:"not null" json:"duration_min"`

	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`

	Notes     string    `gorm:"size:255" json:"notes"`
	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingItem é o snapshot imutável de um serviço no momento do
// agendamento. Preço e duração ficam congelados aqui; mudanças no
// catálogo depois da criação não retroagem.
type BookingItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	Position  int       `gorm:"not null" json:"position"`

	ServiceID   uuid.UUID       `gorm:"type:uuid;not null" json:"service_id"`
	ServiceName string          `gorm:"size:100;not null" json:"service_name"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMin) * time.Minute)
}

// PrimaryService devolve o primeiro item, para consumidores que ainda
// exibem o agendamento como "um serviço".
func (b *Booking) PrimaryService() *BookingItem {
	if len(b.Items) == 0 {
		return nil
	}
	return &b.Items[0]
}

func (b *Booking) ServiceNames() string {
	names := make([]string, 0, len(b.Items))
	for _, it := range b.Items {
		names = append(names, it.ServiceName)
	}
	return strings.Join(names, " + ")
}
