package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
)

// ======================================================
// Fixtures
// ======================================================

func activeStaff() *models.Staff {
	unitID := uuid.New()
	return &models.Staff{
		ID:     uuid.New(),
		UnitID: &unitID,
		Name:   "Rafael",
		Active: true,
	}
}

func haircut() models.Service {
	return models.Service{
		ID:          uuid.New(),
		Name:        "Corte",
		Price:       decimal.RequireFromString("30.00"),
		DurationMin: 30,
		Active:      true,
	}
}

func beard() models.Service {
	return models.Service{
		ID:          uuid.New(),
		Name:        "Barba",
		Price:       decimal.RequireFromString("20.00"),
		DurationMin: 15,
		Active:      true,
	}
}

func baseInput(staffID uuid.UUID, serviceIDs ...uuid.UUID) CreateBookingInput {
	return CreateBookingInput{
		ClientName:  "João Silva",
		ClientEmail: "joao@example.com",
		ClientPhone: "(11) 98765-4321",
		StaffID:     staffID,
		ServiceIDs:  serviceIDs,
		Date:        "2025-06-10",
		Time:        "14:00",
		CreatedBy:   uuid.New(),
	}
}

// ======================================================
// Tests
// ======================================================

func TestCreateBooking_Success(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()
	barba := beard()
	client := &models.Client{
		ID:    uuid.New(),
		Name:  "João Silva",
		Phone: "11987654321",
		Email: "joao@example.com",
	}

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID, barba.ID}).
		Return([]models.Service{corte, barba}, []uuid.UUID(nil), nil)
	repo.On("ListOccupyingForDay", mock.Anything, staff.ID, mock.Anything, mock.Anything).
		Return([]models.Booking(nil), nil)
	repo.On("GetOrCreateClient", mock.Anything, "João Silva", "11987654321", "joao@example.com").
		Return(client, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	b, err := uc.Execute(context.Background(), baseInput(staff.ID, corte.ID, barba.ID))
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, "scheduled", b.Status)
	assert.Equal(t, 45, b.DurationMin)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("50.00")),
		"total esperado 50.00, veio %s", b.TotalPrice)

	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), b.StartTime)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 45, 0, 0, time.UTC), b.EndTime())

	// snapshots desnormalizados
	assert.Equal(t, client.ID, b.ClientID)
	assert.Equal(t, "João Silva", b.ClientName)
	assert.Equal(t, staff.Name, b.StaffName)
	assert.Equal(t, *staff.UnitID, b.UnitID)

	require.Len(t, b.Items, 2)
	assert.Equal(t, 0, b.Items[0].Position)
	assert.Equal(t, "Corte", b.Items[0].ServiceName)
	assert.True(t, b.Items[0].UnitPrice.Equal(corte.Price))
	assert.Equal(t, 30, b.Items[0].DurationMin)
	assert.Equal(t, "Barba", b.Items[1].ServiceName)
	assert.Equal(t, "Corte + Barba", b.ServiceNames())

	repo.AssertExpectations(t)
}

func TestCreateBooking_SnapshotSurvivesCatalogEdit(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID}).
		Return([]models.Service{corte}, []uuid.UUID(nil), nil)
	repo.On("ListOccupyingForDay", mock.Anything, staff.ID, mock.Anything, mock.Anything).
		Return([]models.Booking(nil), nil)
	repo.On("GetOrCreateClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Client{ID: uuid.New(), Name: "João Silva"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	b, err := uc.Execute(context.Background(), baseInput(staff.ID, corte.ID))
	require.NoError(t, err)

	// reajuste posterior no catálogo não retroage no item gravado
	corte.Price = decimal.RequireFromString("45.00")
	corte.Name = "Corte Premium"

	assert.True(t, b.Items[0].UnitPrice.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, "Corte", b.Items[0].ServiceName)
}

func TestCreateBooking_TimeConflict(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()

	// agenda do dia já tem 14:00–14:30; pedir 14:20 conflita
	existing := models.Booking{
		StaffID:     staff.ID,
		StartTime:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		DurationMin: 30,
		Status:      "confirmed",
	}

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID}).
		Return([]models.Service{corte}, []uuid.UUID(nil), nil)
	repo.On("ListOccupyingForDay", mock.Anything, staff.ID, mock.Anything, mock.Anything).
		Return([]models.Booking{existing}, nil)

	in := baseInput(staff.ID, corte.ID)
	in.Time = "14:20"

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "GetOrCreateClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_BackToBackDoesNotConflict(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()

	existing := models.Booking{
		StaffID:     staff.ID,
		StartTime:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		DurationMin: 30,
		Status:      "scheduled",
	}

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID}).
		Return([]models.Service{corte}, []uuid.UUID(nil), nil)
	repo.On("ListOccupyingForDay", mock.Anything, staff.ID, mock.Anything, mock.Anything).
		Return([]models.Booking{existing}, nil)
	repo.On("GetOrCreateClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Client{ID: uuid.New(), Name: "João Silva"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	// começa exatamente quando o anterior termina
	in := baseInput(staff.ID, corte.ID)
	in.Time = "14:30"

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), b.StartTime)
}

func TestCreateBooking_StaffNotFound(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staffID := uuid.New()
	repo.On("GetStaffByID", mock.Anything, staffID).Return((*models.Staff)(nil), nil)

	_, err := uc.Execute(context.Background(), baseInput(staffID, uuid.New()))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestCreateBooking_StaffInactive(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	staff.Active = false

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)

	_, err := uc.Execute(context.Background(), baseInput(staff.ID, uuid.New()))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "staff_inactive"))
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidState))
}

func TestCreateBooking_StaffWithoutUnit(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	staff.UnitID = nil

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)

	_, err := uc.Execute(context.Background(), baseInput(staff.ID, uuid.New()))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "staff_without_unit"))
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	missingID := uuid.New()

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{missingID}).
		Return([]models.Service(nil), []uuid.UUID{missingID}, nil)

	_, err := uc.Execute(context.Background(), baseInput(staff.ID, missingID))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	// a mensagem nomeia o id que faltou
	assert.Contains(t, err.Error(), missingID.String())
}

func TestCreateBooking_ServiceInactive(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()
	corte.Active = false

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID}).
		Return([]models.Service{corte}, []uuid.UUID(nil), nil)

	_, err := uc.Execute(context.Background(), baseInput(staff.ID, corte.ID))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
	assert.Contains(t, err.Error(), "Corte")
}

func TestCreateBooking_NoServices(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)

	_, err := uc.Execute(context.Background(), baseInput(staff.ID))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "missing_services"))
}

func TestCreateBooking_DeduplicatesServiceIDs(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()

	// o repositório recebe os ids já deduplicados
	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID}).
		Return([]models.Service{corte}, []uuid.UUID(nil), nil)
	repo.On("ListOccupyingForDay", mock.Anything, staff.ID, mock.Anything, mock.Anything).
		Return([]models.Booking(nil), nil)
	repo.On("GetOrCreateClient", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&models.Client{ID: uuid.New(), Name: "João Silva"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	b, err := uc.Execute(context.Background(), baseInput(staff.ID, corte.ID, corte.ID, corte.ID))
	require.NoError(t, err)

	require.Len(t, b.Items, 1)
	assert.Equal(t, 30, b.DurationMin)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("30.00")))
	repo.AssertExpectations(t)
}

func TestCreateBooking_InvalidTime(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	corte := haircut()

	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uuid.UUID{corte.ID}).
		Return([]models.Service{corte}, []uuid.UUID(nil), nil)

	in := baseInput(staff.ID, corte.ID)
	in.Time = "25:00"

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestCreateBooking_MissingClientName(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	staff := activeStaff()
	repo.On("GetStaffByID", mock.Anything, staff.ID).Return(staff, nil)

	in := baseInput(staff.ID, uuid.New())
	in.ClientName = ""

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "missing_client_name"))
}
