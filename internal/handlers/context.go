package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/middleware"
)

// identidade extraída do token pelo middleware
func currentIdentity(c *gin.Context) (salonID uint, userID *uint) {
	salonID = c.GetUint(middleware.ContextSalonID)

	if uid := c.GetUint(middleware.ContextUserID); uid != 0 {
		userID = &uid
	}

	return salonID, userID
}

// writeBusinessError traduz o código de negócio para o status HTTP.
// Qualquer erro que não seja de negócio vira 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !asBusiness(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	switch {
	case strings.HasSuffix(be.Code, "_not_found"):
		httperr.NotFound(c, be.Code, messageFor(be.Code))

	case be.Code == "time_conflict" || be.Code == "insufficient_stock":
		httperr.Conflict(c, be.Code, messageFor(be.Code))

	default:
		httperr.BadRequest(c, be.Code, messageFor(be.Code))
	}
}

func asBusiness(err error, dest *httperr.BusinessError) bool {
	be, ok := err.(httperr.BusinessError)
	if ok {
		*dest = be
	}
	return ok
}

func messageFor(code string) string {
	switch code {
	case "time_conflict":
		return "Já existe um agendamento nesse horário."
	case "insufficient_stock":
		return "Estoque insuficiente para um dos produtos."
	case "invalid_state":
		return "Operação não permitida no status atual do agendamento."
	case "appointment_not_found":
		return "Agendamento não encontrado."
	case "employee_not_found":
		return "Funcionário não encontrado."
	case "client_not_found":
		return "Cliente não encontrado."
	case "missing_employee":
		return "Informe o funcionário responsável pela finalização."
	case "missing_required_field":
		return "Preencha todos os campos obrigatórios."
	case "invalid_date":
		return "Data inválida. Use o formato dd/MM/yyyy."
	case "invalid_time":
		return "Horário inválido. Use o formato HH:MM."
	case "invalid_time_range":
		return "O horário final deve ser depois do inicial."
	case "invalid_item_index":
		return "Item inexistente na comanda."
	case "report_write_failed":
		return "Falha ao gravar o relatório. Reemita pelo endpoint de retry."
	default:
		return "Requisição inválida."
	}
}
