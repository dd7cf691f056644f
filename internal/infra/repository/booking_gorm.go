package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetStaffByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Staff, error) {

	var staff models.Staff
	err := r.db.WithContext(ctx).First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *BookingGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uuid.UUID,
) ([]models.Service, []uuid.UUID, error) {

	var found []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&found).Error; err != nil {
		return nil, nil, err
	}

	byID := make(map[uuid.UUID]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	// preserva a ordem pedida e coleta os ids que não resolveram
	services := make([]models.Service, 0, len(ids))
	var missing []uuid.UUID
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		services = append(services, s)
	}

	return services, missing, nil
}

// --------------------------------------------------
// Client (get or create)
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	var err error

	if phone != "" {
		err = r.db.WithContext(ctx).
			Where("phone = ?", phone).
			First(&client).Error
	} else {
		// sem telefone, o nome é a chave de fallback
		err = r.db.WithContext(ctx).
			Where("LOWER(name) = ?", strings.ToLower(name)).
			First(&client).Error
	}

	if err == nil {
		// atualiza dados de contato do cliente já conhecido
		client.Name = name
		if email != "" {
			client.Email = email
		}
		if phone != "" {
			client.Phone = phone
		}
		if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		Name:   name,
		Phone:  phone,
		Email:  email,
		Active: true,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking fecha a janela de corrida checagem→escrita: a transação
// serializa criações do mesmo barbeiro com advisory lock, reconfere o
// conflito com FOR UPDATE e só então insere.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	end := b.EndTime()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			b.StaffID.String(),
		).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND status IN ? AND start_time < ? AND (start_time + duration_min * interval '1 minute') > ?",
				b.StaffID,
				domain.OccupyingStatusStrings(),
				end,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.Conflict(
				"time_conflict",
				"Horário já ocupado para este barbeiro.",
			)
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) ListOccupyingForDay(
	ctx context.Context,
	staffID uuid.UUID,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "staff_id", "start_time", "duration_min", "status").
		Where(
			"staff_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			staffID, domain.OccupyingStatusStrings(), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (state change / query)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&b, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Omit("Items").
		Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filters domain.ListFilters,
) ([]models.Booking, error) {
	return r.list(ctx, nil, filters)
}

func (r *BookingGormRepository) ListBookingsByStaff(
	ctx context.Context,
	staffID uuid.UUID,
	filters domain.ListFilters,
) ([]models.Booking, error) {
	return r.list(ctx, &staffID, filters)
}

func (r *BookingGormRepository) list(
	ctx context.Context,
	staffID *uuid.UUID,
	filters domain.ListFilters,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	} else if filters.StaffID != nil {
		q = q.Where("staff_id = ?", *filters.StaffID)
	}

	if filters.Status != "" {
		q = q.Where("status = ?", strings.ToLower(strings.TrimSpace(filters.Status)))
	}

	if filters.DateFrom != nil {
		from, _ := domain.DayWindow(*filters.DateFrom)
		q = q.Where("start_time >= ?", from)
	}

	if filters.DateTo != nil {
		// inclusivo até o fim do dia
		_, to := domain.DayWindow(*filters.DateTo)
		q = q.Where("start_time < ?", to)
	}

	if filters.ClientName != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(filters.ClientName)) + "%"
		q = q.Where("LOWER(client_name) LIKE ?", like)
	}

	var bookings []models.Booking
	if err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
