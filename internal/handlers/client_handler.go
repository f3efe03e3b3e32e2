package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httpresp"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

func (h *ClientHandler) List(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	query := h.db.Where("salon_id = ?", salonID)

	// busca por substring, case-insensitive
	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+q+"%")
	}

	var clients []models.Client
	if err := query.
		Order("name ASC").
		Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
		return
	}

	httpresp.List(c, clients)
}

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	client := models.Client{
		SalonID: salonID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	salonID, _ := currentIdentity(c)
	id := c.Param("id")

	result := h.db.
		Where("salon_id = ?", salonID).
		Delete(&models.Client{}, id)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_client"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}
