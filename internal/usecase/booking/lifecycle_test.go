package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
)

func scheduledBooking() *models.Booking {
	return &models.Booking{
		ID:          uuid.New(),
		ClientName:  "João Silva",
		StaffName:   "Rafael",
		StartTime:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		DurationMin: 30,
		Status:      "scheduled",
	}
}

// ======================================================
// Confirm
// ======================================================

func TestConfirmBooking_FromScheduled(t *testing.T) {
	repo := new(mockRepository)
	uc := NewConfirmBooking(repo, nil)

	b := scheduledBooking()
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBooking", mock.Anything, b).Return(nil)

	got, err := uc.Execute(context.Background(), b.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	repo.AssertExpectations(t)
}

func TestConfirmBooking_AlreadyConfirmed(t *testing.T) {
	repo := new(mockRepository)
	uc := NewConfirmBooking(repo, nil)

	b := scheduledBooking()
	b.Status = "confirmed"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)

	_, err := uc.Execute(context.Background(), b.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	assert.Equal(t, "confirmed", b.Status)

	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	repo := new(mockRepository)
	uc := NewConfirmBooking(repo, nil)

	id := uuid.New()
	repo.On("GetBookingByID", mock.Anything, id).Return((*models.Booking)(nil), nil)

	_, err := uc.Execute(context.Background(), id, uuid.New())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// ======================================================
// Cancel
// ======================================================

func TestCancelBooking_FromConfirmed(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCancelBooking(repo, nil, time.UTC)

	b := scheduledBooking()
	b.Status = "confirmed"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBooking", mock.Anything, b).Return(nil)

	got, err := uc.Execute(context.Background(), b.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancelledAt)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCancelBooking(repo, nil, time.UTC)

	b := scheduledBooking()
	b.Status = "cancelled"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)

	_, err := uc.Execute(context.Background(), b.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))

	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_AfterCompletion(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCancelBooking(repo, nil, time.UTC)

	b := scheduledBooking()
	b.Status = "completed"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)

	_, err := uc.Execute(context.Background(), b.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	assert.Equal(t, "completed", b.Status)
}

// ======================================================
// Change status
// ======================================================

func TestChangeBookingStatus_ScheduledToPresent(t *testing.T) {
	repo := new(mockRepository)
	uc := NewChangeBookingStatus(repo, nil, time.UTC)

	b := scheduledBooking()
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBooking", mock.Anything, b).Return(nil)

	got, err := uc.Execute(context.Background(), b.ID, "present", nil, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "present", got.Status)
}

func TestChangeBookingStatus_CaseInsensitive(t *testing.T) {
	repo := new(mockRepository)
	uc := NewChangeBookingStatus(repo, nil, time.UTC)

	b := scheduledBooking()
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBooking", mock.Anything, b).Return(nil)

	got, err := uc.Execute(context.Background(), b.ID, "CONFIRMED", nil, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
}

func TestChangeBookingStatus_UnknownStatus(t *testing.T) {
	repo := new(mockRepository)
	uc := NewChangeBookingStatus(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), uuid.New(), "pending", nil, uuid.New())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	// parse falha antes de qualquer ida ao banco
	repo.AssertNotCalled(t, "GetBookingByID", mock.Anything, mock.Anything)
}

func TestChangeBookingStatus_InvalidTransition(t *testing.T) {
	repo := new(mockRepository)
	uc := NewChangeBookingStatus(repo, nil, time.UTC)

	b := scheduledBooking()
	b.Status = "present"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)

	_, err := uc.Execute(context.Background(), b.ID, "scheduled", nil, uuid.New())
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	assert.Equal(t, "present", b.Status)

	repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
}

func TestChangeBookingStatus_CompletedSetsTimestamp(t *testing.T) {
	repo := new(mockRepository)
	uc := NewChangeBookingStatus(repo, nil, time.UTC)

	b := scheduledBooking()
	b.Status = "present"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBooking", mock.Anything, b).Return(nil)

	got, err := uc.Execute(context.Background(), b.ID, "completed", nil, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestChangeBookingStatus_ReplacesNotes(t *testing.T) {
	repo := new(mockRepository)
	uc := NewChangeBookingStatus(repo, nil, time.UTC)

	b := scheduledBooking()
	b.Notes = "trazer foto de referência"
	repo.On("GetBookingByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("UpdateBooking", mock.Anything, b).Return(nil)

	notes := "cliente chegou adiantado"
	got, err := uc.Execute(context.Background(), b.ID, "present", &notes, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "cliente chegou adiantado", got.Notes)
}
