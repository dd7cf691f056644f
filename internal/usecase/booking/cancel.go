package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notetime/booking-api/internal/audit"
	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CancelBooking) Execute(
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

	now := time.Now().In(uc.loc)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
