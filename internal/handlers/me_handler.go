package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/notetime/booking-api/internal/middleware"
	"github.com/notetime/booking-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	staffIDVal, exists := c.Get(middleware.ContextStaffID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	staffID, ok := staffIDVal.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var staff models.Staff
	if err := h.db.Preload("Unit").First(&staff, "id = ?", staffID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": gin.H{
			"id":          staff.ID,
			"name":        staff.Name,
			"email":       staff.Email,
			"phone":       staff.Phone,
			"role":        staff.Role,
			"specialties": staff.Specialties,
			"unit":        staff.Unit,
		},
	})
}
