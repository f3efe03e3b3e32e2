package appointment_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// ======================================================
// Armazém em memória
// ======================================================

type fakeRepo struct {
	nextID       uint
	appointments map[uint]*models.Appointment
	employees    []models.Employee
	clients      []models.Client

	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]*models.Appointment),
	}
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	return &models.Salon{ID: id, Name: "Espaço Vita"}, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	ap.ID = r.nextID
	clone := *ap
	r.appointments[ap.ID] = &clone
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, salonID, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.SalonID != salonID {
		return nil, errors.New("record not found")
	}
	clone := *ap
	clone.Itens = append(models.ItemList{}, ap.Itens...)
	return &clone, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *ap
	r.appointments[ap.ID] = &clone
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, salonID, id uint) error {
	ap, ok := r.appointments[id]
	if !ok || ap.SalonID != salonID {
		return errors.New("record not found")
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointmentsByDate(_ context.Context, salonID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID == salonID && ap.Date == date {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Inicio < out[j].Inicio })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByClient(_ context.Context, salonID uint, name string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID == salonID && strings.Contains(strings.ToLower(ap.Cliente), strings.ToLower(name)) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByEmployee(_ context.Context, salonID uint, name string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID == salonID && strings.Contains(strings.ToLower(ap.FuncionarioNome), strings.ToLower(name)) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindEmployeeByName(_ context.Context, salonID uint, name string) (*models.Employee, error) {
	for i := range r.employees {
		e := &r.employees[i]
		if e.SalonID == salonID && strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) FindClientByName(_ context.Context, salonID uint, name string) (*models.Client, error) {
	for i := range r.clients {
		c := &r.clients[i]
		if c.SalonID == salonID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

// ======================================================
// Catálogo em memória
// ======================================================

type fakeCatalog struct {
	products map[uint]*models.Product
	services map[uint]*models.SalonService
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: make(map[uint]*models.Product),
		services: make(map[uint]*models.SalonService),
	}
}

func (c *fakeCatalog) AdjustStock(_ context.Context, salonID uint, kind models.ItemKind, id uint, delta int) error {
	if kind != models.KindProduto {
		return nil
	}

	p, ok := c.products[id]
	if !ok || p.SalonID != salonID {
		return errors.New("record not found")
	}

	next := p.Quantity + delta
	if next < 0 {
		return httperr.ErrBusiness("insufficient_stock")
	}

	p.Quantity = next
	return nil
}

func (c *fakeCatalog) GetService(_ context.Context, salonID, id uint) (*models.SalonService, error) {
	s, ok := c.services[id]
	if !ok || s.SalonID != salonID {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (c *fakeCatalog) GetProduct(_ context.Context, salonID, id uint) (*models.Product, error) {
	p, ok := c.products[id]
	if !ok || p.SalonID != salonID {
		return nil, errors.New("record not found")
	}
	return p, nil
}

// ======================================================
// Log de relatório em memória
// ======================================================

type fakeReports struct {
	lines map[uint][]models.ReportLine

	appendCalls int
	appendErr   error
}

func newFakeReports() *fakeReports {
	return &fakeReports{lines: make(map[uint][]models.ReportLine)}
}

func (s *fakeReports) AppendForAppointment(_ context.Context, appointmentID uint, lines []models.ReportLine) (bool, error) {
	s.appendCalls++

	if s.appendErr != nil {
		return false, s.appendErr
	}

	if _, exists := s.lines[appointmentID]; exists || len(lines) == 0 {
		return false, nil
	}

	s.lines[appointmentID] = append([]models.ReportLine{}, lines...)
	return true, nil
}

func (s *fakeReports) ListBySalon(_ context.Context, salonID uint) ([]models.ReportLine, error) {
	var out []models.ReportLine
	for _, group := range s.lines {
		for _, line := range group {
			if line.SalonID == salonID {
				out = append(out, line)
			}
		}
	}
	return out, nil
}
