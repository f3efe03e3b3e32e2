package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httpresp"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/appointment"
)

type HistoryHandler struct {
	history *appointment.History
}

func NewHistoryHandler(history *appointment.History) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List devolve as linhas de finalização filtradas, mais recentes primeiro,
// com o total acumulado por linha.
func (h *HistoryHandler) List(c *gin.Context) {
	salonID, _ := currentIdentity(c)

	filter := appointment.HistoryFilter{
		From:        c.Query("from"),
		To:          c.Query("to"),
		Cliente:     c.Query("cliente"),
		Funcionario: c.Query("funcionario"),
		Item:        c.Query("item"),
	}

	result, err := h.history.Execute(c.Request.Context(), salonID, filter)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, result)
}
