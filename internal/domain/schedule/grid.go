package schedule

import (
	"fmt"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// ===============================
// Grade do dia
// ===============================

const (
	GridStartHour = 8
	GridEndHour   = 22
	SlotMinutes   = 30
)

type SlotState string

const (
	SlotFree      SlotState = "free"
	SlotPending   SlotState = "pending"
	SlotFinalized SlotState = "finalized"
)

// Cores observadas pela grade visual.
func (s SlotState) Color() string {
	switch s {
	case SlotPending:
		return "yellow"
	case SlotFinalized:
		return "green"
	default:
		return "gray"
	}
}

// Slots devolve os rótulos de meia em meia hora das 08:00 às 22:00,
// inclusivos nas duas pontas (29 slots).
func Slots() []string {
	var out []string
	for m := GridStartHour * 60; m <= GridEndHour*60; m += SlotMinutes {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

// ClassifySlots pinta cada slot do dia. Um slot de minuto M é coberto pelo
// agendamento A quando inicio ≤ M ≤ fim (inclusivo nas duas pontas, igual à
// renderização da grade); quando mais de um agendamento cobre o mesmo slot,
// o último da lista prevalece.
func ClassifySlots(slots []string, appointments []models.Appointment) map[string]SlotState {
	states := make(map[string]SlotState, len(slots))
	for _, s := range slots {
		states[s] = SlotFree
	}

	for _, ap := range appointments {
		start := MinutesOf(ap.Inicio)
		end := MinutesOf(ap.Fim)

		state := SlotPending
		if ap.Status == string(StatusFinalizado) {
			state = SlotFinalized
		}

		for _, s := range slots {
			m := MinutesOf(s)
			if m >= start && m <= end {
				states[s] = state
			}
		}
	}

	return states
}

// FillRange aplica o clique num slot aos campos de horário do editor:
// início vazio é preenchido primeiro, depois o fim é sobrescrito.
func FillRange(start, end, label string) (string, string) {
	if start == "" {
		return label, end
	}
	return start, label
}
