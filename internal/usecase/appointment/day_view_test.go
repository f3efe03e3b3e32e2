package appointment_test

import (
	"context"
	"testing"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/appointment"
)

func TestDayView(t *testing.T) {
	repo := newFakeRepo()

	pending := seedPending(repo, serviceItem(1, "Corte", "80.00"))

	finalized := seedPending(repo)
	finalized.Inicio = "14:00"
	finalized.Fim = "15:00"
	finalized.Cliente = "Joana"
	finalized.Status = "Finalizado"
	_ = repo.UpdateAppointment(context.Background(), finalized)

	uc := appointment.NewDayView(repo, nil)

	view, err := uc.Execute(context.Background(), salonID, "10/09/2026")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if view.Date != "10/09/2026" {
		t.Errorf("date = %q", view.Date)
	}
	if len(view.Slots) != 29 {
		t.Fatalf("slots = %d, want 29", len(view.Slots))
	}

	states := make(map[string]string)
	colors := make(map[string]string)
	for _, s := range view.Slots {
		states[s.Label] = s.State
		colors[s.Label] = s.Color
	}

	if states["10:30"] != "pending" || colors["10:30"] != "yellow" {
		t.Errorf("slot 10:30 = %s/%s, want pending/yellow", states["10:30"], colors["10:30"])
	}
	if states["14:30"] != "finalized" || colors["14:30"] != "green" {
		t.Errorf("slot 14:30 = %s/%s, want finalized/green", states["14:30"], colors["14:30"])
	}
	if states["08:00"] != "free" || colors["08:00"] != "gray" {
		t.Errorf("slot 08:00 = %s/%s, want free/gray", states["08:00"], colors["08:00"])
	}

	// lista do dia ordenada por início
	if len(view.Appointments) != 2 {
		t.Fatalf("appointments = %d, want 2", len(view.Appointments))
	}
	if view.Appointments[0].ID != pending.ID || view.Appointments[1].Cliente != "Joana" {
		t.Errorf("ordem da lista: %+v", view.Appointments)
	}
	if view.Appointments[0].Itens != 1 {
		t.Errorf("contagem de itens = %d, want 1", view.Appointments[0].Itens)
	}
}

func TestDayViewInvalidDate(t *testing.T) {
	uc := appointment.NewDayView(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), salonID, "10-09-2026")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("err = %v, want invalid_date", err)
	}
}
