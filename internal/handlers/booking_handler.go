package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/middleware"
	"github.com/notetime/booking-api/internal/notify"
	"github.com/notetime/booking-api/internal/timezone"
	ucBooking "github.com/notetime/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	confirmUC      *ucBooking.ConfirmBooking
	cancelUC       *ucBooking.CancelBooking
	changeStatusUC *ucBooking.ChangeBookingStatus
	getUC          *ucBooking.GetBooking
	listUC         *ucBooking.ListBookings
	mailer         *notify.Mailer
	loc            *time.Location
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	changeStatusUC *ucBooking.ChangeBookingStatus,
	getUC *ucBooking.GetBooking,
	listUC *ucBooking.ListBookings,
	mailer *notify.Mailer,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		confirmUC:      confirmUC,
		cancelUC:       cancelUC,
		changeStatusUC: changeStatusUC,
		getUC:          getUC,
		listUC:         listUC,
		mailer:         mailer,
		loc:            loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string   `json:"client_name" binding:"required"`
	ClientPhone string   `json:"client_phone"`
	ClientEmail string   `json:"client_email"`
	StaffID     string   `json:"staff_id"`
	ServiceIDs  []string `json:"service_ids" binding:"required,min=1"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	Notes       string   `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextStaffID).(uuid.UUID)
	role := c.GetString(middleware.ContextUserRole)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	// barbeiro agenda na própria agenda; admin informa o barbeiro
	staffID := actorID
	if role == middleware.RoleAdmin {
		parsed, err := uuid.Parse(req.StaffID)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Barbeiro inválido.")
			return
		}
		staffID = parsed
	}

	serviceIDs, err := parseUUIDs(req.ServiceIDs)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido: "+err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		StaffID:     staffID,
		ServiceIDs:  serviceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		CreatedBy:   actorID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	// notificação best-effort; nunca derruba o agendamento criado
	h.mailer.SendConfirmation(b)

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextStaffID).(uuid.UUID)
	role := c.GetString(middleware.ContextUserRole)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	if role != middleware.RoleAdmin && b.StaffID != actorID {
		httperr.Forbidden(c, "not_your_booking", "Agendamento de outro barbeiro.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextStaffID).(uuid.UUID)
	role := c.GetString(middleware.ContextUserRole)

	filters := domain.ListFilters{
		Status:     c.Query("status"),
		ClientName: c.Query("client_name"),
	}

	loc := h.loc
	if loc == nil {
		loc = timezone.Location("")
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
			return
		}
		filters.DateFrom = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.ParseInLocation("2006-01-02", toStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida.")
			return
		}
		filters.DateTo = &to
	}

	if staffStr := c.Query("staff_id"); staffStr != "" {
		staffID, err := uuid.Parse(staffStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Barbeiro inválido.")
			return
		}
		filters.StaffID = &staffID
	}

	// barbeiro só enxerga a própria agenda
	var scope *uuid.UUID
	if role != middleware.RoleAdmin {
		scope = &actorID
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), filters, scope)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextStaffID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextStaffID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	h.mailer.SendCancellation(b)

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextStaffID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.changeStatusUC.Execute(c.Request.Context(), id, req.Status, req.Notes, actorID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	if b.Status == string(domain.StatusCancelled) {
		h.mailer.SendCancellation(b)
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// HELPERS
// ======================================================

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
