package order

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/audit"
	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// ======================================================
// COMPOSER
// ======================================================

// Composer administra a lista ordenada de itens de um agendamento pendente,
// mantendo o acoplamento com o estoque.
type Composer struct {
	repo    domain.Repository
	catalog catalog.Gateway
	audit   *audit.Dispatcher
}

func NewComposer(
	repo domain.Repository,
	gateway catalog.Gateway,
	audit *audit.Dispatcher,
) *Composer {
	return &Composer{
		repo:    repo,
		catalog: gateway,
		audit:   audit,
	}
}

// ======================================================
// ADD ITEMS
// ======================================================

func (uc *Composer) AddItems(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	selected []models.Item,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanMutateItems(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if err := DecrementProducts(ctx, uc.catalog, salonID, selected); err != nil {
		return nil, err
	}

	ap.Itens = append(ap.Itens, selected...)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		RestockProducts(ctx, uc.catalog, salonID, selected)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "order_items_added",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"count": len(selected)},
	})

	return ap, nil
}

// ======================================================
// REMOVE ITEM
// ======================================================

// RemoveItem desanexa exatamente uma ocorrência da linha na posição index.
// Linhas idênticas duplicadas são suportadas: sai uma e somente uma.
func (uc *Composer) RemoveItem(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	index int,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanMutateItems(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if index < 0 || index >= len(ap.Itens) {
		return nil, httperr.ErrBusiness("invalid_item_index")
	}

	removed := ap.Itens[index]
	ap.Itens = append(ap.Itens[:index:index], ap.Itens[index+1:]...)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if removed.Kind == models.KindProduto {
		RestockProducts(ctx, uc.catalog, salonID, models.ItemList{removed})
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "order_item_removed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"item": removed.Nome},
	})

	return ap, nil
}
