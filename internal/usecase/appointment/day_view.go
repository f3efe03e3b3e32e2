package appointment

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/cache"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/dto"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
)

// DayView monta a visão do dia: grade de slots classificada mais a lista de
// agendamentos, sempre relida do armazém (o cache redis é só um atalho
// invalidado por evento).
type DayView struct {
	repo  domain.Repository
	cache *cache.DayGrid
}

func NewDayView(repo domain.Repository, grid *cache.DayGrid) *DayView {
	return &DayView{
		repo:  repo,
		cache: grid,
	}
}

func (uc *DayView) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) (*dto.DayViewDTO, error) {

	if !domain.ValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var cached dto.DayViewDTO
	if uc.cache.Get(ctx, salonID, date, &cached) {
		return &cached, nil
	}

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	slots := domain.Slots()
	states := domain.ClassifySlots(slots, appointments)

	view := &dto.DayViewDTO{
		Date:         date,
		Slots:        make([]dto.SlotDTO, 0, len(slots)),
		Appointments: make([]dto.AppointmentListDTO, 0, len(appointments)),
	}

	for _, label := range slots {
		state := states[label]
		view.Slots = append(view.Slots, dto.SlotDTO{
			Label: label,
			State: string(state),
			Color: state.Color(),
		})
	}

	for _, ap := range appointments {
		view.Appointments = append(view.Appointments, dto.AppointmentListDTO{
			ID:      ap.ID,
			Inicio:  ap.Inicio,
			Fim:     ap.Fim,
			Cliente: ap.Cliente,
			Status:  ap.Status,
			Itens:   len(ap.Itens),
		})
	}

	uc.cache.Set(ctx, salonID, date, view)

	return view, nil
}
