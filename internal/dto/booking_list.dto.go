package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingListDTO struct {
	ID          uuid.UUID       `json:"id"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	DurationMin int             `json:"duration_min"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	ClientName  string          `json:"client_name"`
	StaffName   string          `json:"staff_name"`
	Services    string          `json:"services"`
}
