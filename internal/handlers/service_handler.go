package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/notetime/booking-api/internal/cache"
	"github.com/notetime/booking-api/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.CatalogCache
}

func NewServiceHandler(db *gorm.DB, catalog *cache.CatalogCache) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
		return
	}

	service, err := models.NewService(req.Name, req.Description, price, req.DurationMin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service", "message": err.Error()})
		return
	}

	if err := h.db.Create(service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.invalidateCatalog(c)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || !price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
			return
		}
		service.Price = price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_duration"})
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.invalidateCatalog(c)

	c.JSON(http.StatusOK, service)
}

// Deactivate é soft-delete: agendamentos existentes seguem referenciando
// o serviço pelos snapshots.
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	h.toggleActive(c, false)
}

func (h *ServiceHandler) Activate(c *gin.Context) {
	h.toggleActive(c, true)
}

func (h *ServiceHandler) toggleActive(c *gin.Context, active bool) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	service.Active = active
	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.invalidateCatalog(c)

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) invalidateCatalog(c *gin.Context) {
	if h.catalog == nil {
		return
	}
	_ = h.catalog.Invalidate(c.Request.Context())
}
