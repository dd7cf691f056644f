package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetime/booking-api/internal/cache"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
	"github.com/notetime/booking-api/internal/notify"
	ucBooking "github.com/notetime/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	catalog  *cache.CatalogCache
	createUC *ucBooking.CreateBooking
	mailer   *notify.Mailer
}

func NewPublicHandler(
	db *gorm.DB,
	catalog *cache.CatalogCache,
	createUC *ucBooking.CreateBooking,
	mailer *notify.Mailer,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		catalog:  catalog,
		createUC: createUC,
		mailer:   mailer,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName  string   `json:"client_name" binding:"required"`
	ClientPhone string   `json:"client_phone" binding:"required"`
	ClientEmail string   `json:"client_email"`
	StaffID     string   `json:"staff_id" binding:"required"`
	ServiceIDs  []string `json:"service_ids" binding:"required,min=1"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD ou DD/MM/YYYY
	Time        string   `json:"time" binding:"required"` // HH:mm
	Notes       string   `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES (cache-first)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	if h.catalog != nil {
		if cached, err := h.catalog.GetActiveServices(ctx); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	if h.catalog != nil {
		_ = h.catalog.SetActiveServices(ctx, services)
	}

	c.JSON(http.StatusOK, services)
}

////////////////////////////////////////////////////////
// STAFF
////////////////////////////////////////////////////////

func (h *PublicHandler) ListStaff(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.
		Where("active = true AND unit_id IS NOT NULL").
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar barbeiros.")
		return
	}

	out := make([]gin.H, 0, len(staff))
	for _, s := range staff {
		out = append(out, gin.H{
			"id":          s.ID,
			"name":        s.Name,
			"specialties": s.Specialties,
			"unit_id":     s.UnitID,
		})
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// CREATE BOOKING (público → reusa o use case privado)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Barbeiro inválido.")
		return
	}

	serviceIDs, err := parseUUIDs(req.ServiceIDs)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
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
		CreatedBy:   uuid.Nil, // criado pelo próprio cliente, sem ator logado
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	h.mailer.SendConfirmation(b)

	c.JSON(http.StatusCreated, b)
}
