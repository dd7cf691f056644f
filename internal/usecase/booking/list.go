package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/dto"
	"github.com/notetime/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lista agendamentos ordenados do mais recente para o mais
// antigo. Quando scopeStaffID é informado (chamador com papel de
// barbeiro), a listagem fica restrita à agenda dele.
func (uc *ListBookings) Execute(
	ctx context.Context,
	filters domain.ListFilters,
	scopeStaffID *uuid.UUID,
) ([]dto.BookingListDTO, error) {

	var bookings []models.Booking
	var err error

	if scopeStaffID != nil {
		bookings, err = uc.repo.ListBookingsByStaff(ctx, *scopeStaffID, filters)
	} else {
		bookings, err = uc.repo.ListBookings(ctx, filters)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime(),
			DurationMin: b.DurationMin,
			TotalPrice:  b.TotalPrice,
			Status:      b.Status,
			ClientName:  b.ClientName,
			StaffName:   b.StaffName,
			Services:    b.ServiceNames(),
		})
	}

	return out, nil
}
