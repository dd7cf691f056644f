package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/notetime/booking-api/internal/audit"
	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
)

type ConfirmBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
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

	if err := domain.Confirm(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
