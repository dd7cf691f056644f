package booking

import (
	"time"

	"github.com/notetime/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// As ações mutam o status em memória; quem persiste é o chamador.

func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Transition é a mudança genérica de status; consulta a mesma tabela
// das operações nomeadas.
func Transition(b *models.Booking, target Status, now time.Time) error {
	if err := CanTransition(Status(b.Status), target); err != nil {
		return err
	}

	b.Status = string(target)

	switch target {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}

	return nil
}

func CanBeCancelled(b *models.Booking) bool {
	s := Status(b.Status)
	return s == StatusScheduled || s == StatusConfirmed
}
