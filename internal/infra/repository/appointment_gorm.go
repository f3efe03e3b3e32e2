package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		Delete(&models.Appointment{}).Error
}

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	salonID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ?", salonID, date).
		Order("inicio ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByClient(
	ctx context.Context,
	salonID uint,
	clientName string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND LOWER(cliente) LIKE LOWER(?)",
			salonID, "%"+clientName+"%",
		).
		Order("date DESC, inicio ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByEmployee(
	ctx context.Context,
	salonID uint,
	employeeName string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND LOWER(funcionario_nome) LIKE LOWER(?)",
			salonID, "%"+employeeName+"%",
		).
		Order("date DESC, inicio ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AppointmentGormRepository) FindEmployeeByName(
	ctx context.Context,
	salonID uint,
	name string,
) (*models.Employee, error) {

	var employee models.Employee
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND LOWER(name) = LOWER(?)", salonID, name).
		First(&employee).Error; err != nil {
		return nil, err
	}

	return &employee, nil
}

func (r *AppointmentGormRepository) FindClientByName(
	ctx context.Context,
	salonID uint,
	name string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND LOWER(name) = LOWER(?)", salonID, name).
		First(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
