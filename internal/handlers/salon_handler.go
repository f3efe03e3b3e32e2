package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
	"github.com/EspacoVitaServices/salon-scheduler/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
		return
	}

	c.JSON(http.StatusOK, salon)
}

type UpdateSalonRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *SalonHandler) Update(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		tz := *req.Timezone
		if tz == "" {
			tz = timezone.DefaultTimezone
		}
		if !timezone.IsValid(tz) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		salon.Timezone = tz
	}

	if err := h.db.Save(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_salon"})
		return
	}

	c.JSON(http.StatusOK, salon)
}
