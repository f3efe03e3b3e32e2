package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httpresp"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// PublicHandler expõe a agenda e o catálogo de um salão pelo slug, sem
// autenticação. A grade sai sem nomes de cliente: só o estado de cada slot.
type PublicHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewPublicHandler(db *gorm.DB, repo domain.Repository) *PublicHandler {
	return &PublicHandler{db: db, repo: repo}
}

func (h *PublicHandler) findSalon(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}

	return &salon, true
}

func (h *PublicHandler) Agenda(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if !domain.ValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato dd/MM/yyyy.")
		return
	}

	appointments, err := h.repo.ListAppointmentsByDate(c.Request.Context(), salon.ID, date)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	slots := domain.Slots()
	states := domain.ClassifySlots(slots, appointments)

	// estado e cor de cada slot, nunca o nome do cliente
	type publicSlot struct {
		Label string `json:"label"`
		State string `json:"state"`
		Color string `json:"color"`
		Busy  bool   `json:"busy"`
	}

	out := make([]publicSlot, 0, len(slots))
	for _, label := range slots {
		state := states[label]
		out = append(out, publicSlot{
			Label: label,
			State: string(state),
			Color: state.Color(),
			Busy:  state != domain.SlotFree,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"salon": gin.H{
			"name":    salon.Name,
			"slug":    salon.Slug,
			"phone":   salon.Phone,
			"address": salon.Address,
		},
		"date":  date,
		"slots": out,
	})
}

func (h *PublicHandler) Services(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	var services []models.SalonService
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	httpresp.List(c, services)
}
