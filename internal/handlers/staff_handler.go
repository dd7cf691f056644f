package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/notetime/booking-api/internal/middleware"
	"github.com/notetime/booking-api/internal/models"
	"github.com/notetime/booking-api/internal/validators"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone"`
	Specialties string `json:"specialties"`
	UnitID      string `json:"unit_id" binding:"required"`
}

type UpdateStaffRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
	UnitID      *string `json:"unit_id,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if activeStr := strings.TrimSpace(c.Query("active")); activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var staff []models.Staff
	if err := q.Preload("Unit").Order("name ASC").Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_unit_id"})
		return
	}

	var unit models.Unit
	if err := h.db.First(&unit, "id = ?", unitID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_not_found"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	staff := models.Staff{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        validators.NormalizePhone(req.Phone),
		Specialties:  strings.ToLower(req.Specialties),
		Role:         middleware.RoleBarber,
		Active:       true,
		UnitID:       &unitID,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.First(&staff, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_staff"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Phone != nil {
		staff.Phone = validators.NormalizePhone(*req.Phone)
	}
	if req.Specialties != nil {
		staff.Specialties = strings.ToLower(*req.Specialties)
	}
	if req.UnitID != nil {
		unitID, err := uuid.Parse(*req.UnitID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_unit_id"})
			return
		}
		staff.UnitID = &unitID
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}
