package schedule_test

import (
	"testing"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

func TestSlots(t *testing.T) {
	slots := schedule.Slots()

	if len(slots) != 29 {
		t.Fatalf("len(Slots()) = %d, want 29", len(slots))
	}

	if slots[0] != "08:00" {
		t.Errorf("primeiro slot = %q, want 08:00", slots[0])
	}

	if slots[len(slots)-1] != "22:00" {
		t.Errorf("último slot = %q, want 22:00", slots[len(slots)-1])
	}

	if slots[1] != "08:30" {
		t.Errorf("segundo slot = %q, want 08:30", slots[1])
	}
}

func TestClassifySlotsInclusiveCover(t *testing.T) {
	slots := schedule.Slots()

	states := schedule.ClassifySlots(slots, []models.Appointment{
		{Inicio: "10:00", Fim: "11:00", Status: "Pendente"},
	})

	// cobertura inclusiva nas duas pontas: 10:00, 10:30 e 11:00 pintados
	for _, s := range []string{"10:00", "10:30", "11:00"} {
		if states[s] != schedule.SlotPending {
			t.Errorf("slot %s = %s, want pending", s, states[s])
		}
	}

	for _, s := range []string{"09:30", "11:30"} {
		if states[s] != schedule.SlotFree {
			t.Errorf("slot %s = %s, want free", s, states[s])
		}
	}
}

func TestClassifySlotsFinalizedAndLastWins(t *testing.T) {
	slots := schedule.Slots()

	states := schedule.ClassifySlots(slots, []models.Appointment{
		{Inicio: "10:00", Fim: "11:00", Status: "Pendente"},
		{Inicio: "11:00", Fim: "12:00", Status: "Finalizado"},
	})

	// 11:00 é coberto pelos dois; o último da lista prevalece
	if states["11:00"] != schedule.SlotFinalized {
		t.Errorf("slot 11:00 = %s, want finalized", states["11:00"])
	}

	if states["10:30"] != schedule.SlotPending {
		t.Errorf("slot 10:30 = %s, want pending", states["10:30"])
	}

	if states["12:00"] != schedule.SlotFinalized {
		t.Errorf("slot 12:00 = %s, want finalized", states["12:00"])
	}
}

func TestSlotStateColor(t *testing.T) {
	tests := []struct {
		state schedule.SlotState
		want  string
	}{
		{schedule.SlotFree, "gray"},
		{schedule.SlotPending, "yellow"},
		{schedule.SlotFinalized, "green"},
	}

	for _, tt := range tests {
		if got := tt.state.Color(); got != tt.want {
			t.Errorf("%s.Color() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestFillRange(t *testing.T) {
	// primeiro clique preenche o início
	inicio, fim := schedule.FillRange("", "", "10:00")
	if inicio != "10:00" || fim != "" {
		t.Errorf("FillRange vazio = (%q, %q), want (10:00, )", inicio, fim)
	}

	// segundo clique preenche o fim
	inicio, fim = schedule.FillRange("10:00", "", "11:30")
	if inicio != "10:00" || fim != "11:30" {
		t.Errorf("FillRange = (%q, %q), want (10:00, 11:30)", inicio, fim)
	}

	// cliques seguintes sobrescrevem o fim
	inicio, fim = schedule.FillRange("10:00", "11:30", "12:00")
	if inicio != "10:00" || fim != "12:00" {
		t.Errorf("FillRange = (%q, %q), want (10:00, 12:00)", inicio, fim)
	}
}
