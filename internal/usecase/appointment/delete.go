package appointment

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/audit"
	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/events"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/order"
)

type DeleteAppointment struct {
	repo    domain.Repository
	catalog catalog.Gateway
	bus     *events.Bus
	audit   *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	gateway catalog.Gateway,
	bus *events.Bus,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:    repo,
		catalog: gateway,
		bus:     bus,
		audit:   audit,
	}
}

// Execute remove o agendamento. Pendente devolve o estoque de cada linha de
// produto; finalizado não mexe em estoque (a baixa foi consumida na
// finalização) e as linhas de relatório permanecem no log.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID *uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, salonID, appointmentID); err != nil {
		return err
	}

	if domain.RollsBackStockOnDelete(domain.Status(ap.Status)) {
		order.RestockProducts(ctx, uc.catalog, salonID, ap.Itens)
	}

	uc.bus.Publish(events.AppointmentDeleted{
		SalonID: salonID,
		Date:    ap.Date,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return nil
}
