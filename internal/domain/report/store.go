package report

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// Store é o log append-only de linhas de finalização.
type Store interface {
	// AppendForAppointment grava as linhas de um agendamento uma única vez.
	// Chamadas repetidas com o mesmo appointmentID não gravam nada e
	// devolvem written=false, o que torna a reemissão do relatório segura.
	AppendForAppointment(
		ctx context.Context,
		appointmentID uint,
		lines []models.ReportLine,
	) (written bool, err error)

	ListBySalon(
		ctx context.Context,
		salonID uint,
	) ([]models.ReportLine, error)
}
