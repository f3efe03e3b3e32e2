package schedule

import "github.com/EspacoVitaServices/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPendente   Status = "Pendente"
	StatusFinalizado Status = "Finalizado"
)

// ===============================
// Validations
// ===============================

// CanFinalize define se um agendamento pode ser finalizado
func CanFinalize(current Status) error {
	if current != StatusPendente {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMutateItems define se a lista de itens ainda pode ser alterada
func CanMutateItems(current Status) error {
	if current != StatusPendente {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// RollsBackStockOnDelete: só exclusões de pendentes devolvem estoque; num
// finalizado a baixa já foi consumida.
func RollsBackStockOnDelete(current Status) bool {
	return current == StatusPendente
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusPendente
}
