package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notetime/booking-api/internal/models"
)

// ListFilters compõe a listagem de agendamentos. Campos vazios são
// ignorados. DateTo é inclusivo até o fim do dia.
type ListFilters struct {
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	StaffID    *uuid.UUID
	ClientName string
}

type Repository interface {
	// -------- Catalog lookups --------
	GetStaffByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Staff, error)

	// GetServicesByIDs resolve os ids pedidos; ids não encontrados vêm
	// na segunda lista para que o erro possa nomeá-los.
	GetServicesByIDs(
		ctx context.Context,
		ids []uuid.UUID,
	) ([]models.Service, []uuid.UUID, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persiste o agendamento fechando a janela de corrida
	// entre checagem e escrita (transação + lock por barbeiro).
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ListOccupyingForDay devolve os agendamentos ocupantes do barbeiro
	// no dia do instante informado, ordenados por início.
	ListOccupyingForDay(
		ctx context.Context,
		staffID uuid.UUID,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	// -------- Booking (state change / query) --------
	GetBookingByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		filters ListFilters,
	) ([]models.Booking, error)

	ListBookingsByStaff(
		ctx context.Context,
		staffID uuid.UUID,
		filters ListFilters,
	) ([]models.Booking, error)
}
