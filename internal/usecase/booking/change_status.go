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

type ChangeBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute aplica a transição genérica. O status é validado contra o
// conjunto reconhecido (caixa indiferente) e contra a tabela de
// transições; notas opcionais substituem as atuais.
func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
	rawStatus string,
	notes *string,
	actorID uuid.UUID,
) (*models.Booking, error) {

	target, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

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

	previous := b.Status

	now := time.Now().In(uc.loc)
	if err := domain.Transition(b, target, now); err != nil {
		return nil, err
	}

	if notes != nil {
		b.Notes = *notes
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   string(target),
		},
	})

	return b, nil
}
