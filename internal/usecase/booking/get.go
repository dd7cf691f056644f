package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, httperr.NotFoundErr(
			"booking_not_found",
			"Agendamento não encontrado: "+bookingID.String(),
		)
	}

	return b, nil
}
