package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/models"
)

// mockRepository implementa domain.Repository via testify/mock.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetStaffByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	args := m.Called(ctx, id)
	staff, _ := args.Get(0).(*models.Staff)
	return staff, args.Error(1)
}

func (m *mockRepository) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Service, []uuid.UUID, error) {
	args := m.Called(ctx, ids)
	services, _ := args.Get(0).([]models.Service)
	missing, _ := args.Get(1).([]uuid.UUID)
	return services, missing, args.Error(2)
}

func (m *mockRepository) GetOrCreateClient(ctx context.Context, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, name, phone, email)
	client, _ := args.Get(0).(*models.Client)
	return client, args.Error(1)
}

func (m *mockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) ListOccupyingForDay(ctx context.Context, staffID uuid.UUID, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, staffID, dayStart, dayEnd)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockRepository) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) ListBookings(ctx context.Context, filters domain.ListFilters) ([]models.Booking, error) {
	args := m.Called(ctx, filters)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockRepository) ListBookingsByStaff(ctx context.Context, staffID uuid.UUID, filters domain.ListFilters) ([]models.Booking, error) {
	args := m.Called(ctx, staffID, filters)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

var _ domain.Repository = (*mockRepository)(nil)
