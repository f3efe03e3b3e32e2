package appointment

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/audit"
	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/events"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/order"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	UserID  *uint

	Date    string // dd/MM/yyyy
	Inicio  string // HH:MM
	Fim     string // HH:MM
	Cliente string

	Items []models.Item
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	catalog catalog.Gateway
	bus     *events.Bus
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	gateway catalog.Gateway,
	bus *events.Bus,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		catalog: gateway,
		bus:     bus,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validação de campos (horário malformado nunca chega ao banco)
	// --------------------------------------------------
	if in.Date == "" || in.Inicio == "" || in.Fim == "" || in.Cliente == "" {
		return nil, httperr.ErrBusiness("missing_required_field")
	}

	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.ValidTime(in.Inicio) || !domain.ValidTime(in.Fim) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if domain.MinutesOf(in.Inicio) >= domain.MinutesOf(in.Fim) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	// --------------------------------------------------
	// Conflito de horário no dia
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsByDate(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	if domain.Conflicts(in.Inicio, in.Fim, existing) {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// Baixa de estoque dos itens já selecionados
	// --------------------------------------------------
	if err := order.DecrementProducts(ctx, uc.catalog, in.SalonID, in.Items); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Criação (status centralizado)
	// --------------------------------------------------
	itens := models.ItemList{}
	itens = append(itens, in.Items...)

	ap := &models.Appointment{
		SalonID: in.SalonID,
		Date:    in.Date,
		Inicio:  in.Inicio,
		Fim:     in.Fim,
		Cliente: in.Cliente,
		Itens:   itens,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		order.RestockProducts(ctx, uc.catalog, in.SalonID, in.Items)
		return nil, err
	}

	uc.bus.Publish(events.AppointmentCreated{
		SalonID: in.SalonID,
		Date:    in.Date,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
