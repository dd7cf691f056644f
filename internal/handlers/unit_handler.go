package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/notetime/booking-api/internal/models"
)

type UnitHandler struct {
	db *gorm.DB
}

func NewUnitHandler(db *gorm.DB) *UnitHandler {
	return &UnitHandler{db: db}
}

type CreateUnitRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *UnitHandler) List(c *gin.Context) {
	var units []models.Unit
	if err := h.db.Order("name ASC").Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_units"})
		return
	}
	c.JSON(http.StatusOK, units)
}

func (h *UnitHandler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	unit := models.Unit{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Active:  true,
	}

	if err := h.db.Create(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_unit"})
		return
	}

	c.JSON(http.StatusCreated, unit)
}
