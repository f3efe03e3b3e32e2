package schedule

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// Repository é o contrato do armazém de agendamentos mais os lookups de
// diretório (clientes e funcionários) que o motor consome.
type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) error

	ListAppointmentsByDate(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByClient(
		ctx context.Context,
		salonID uint,
		clientName string,
	) ([]models.Appointment, error)

	ListAppointmentsByEmployee(
		ctx context.Context,
		salonID uint,
		employeeName string,
	) ([]models.Appointment, error)

	// -------- Directory --------
	FindEmployeeByName(
		ctx context.Context,
		salonID uint,
		name string,
	) (*models.Employee, error)

	FindClientByName(
		ctx context.Context,
		salonID uint,
		name string,
	) (*models.Client, error)
}
