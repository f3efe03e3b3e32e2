package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/report"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// AppendForAppointment grava as linhas apenas se o agendamento ainda não
// tiver linhas no log, o que torna a reemissão idempotente.
func (r *ReportGormRepository) AppendForAppointment(
	ctx context.Context,
	appointmentID uint,
	lines []models.ReportLine,
) (bool, error) {

	written := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.ReportLine{}).
			Where("appointment_id = ?", appointmentID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 || len(lines) == 0 {
			return nil
		}

		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		written = true
		return nil
	})

	return written, err
}

func (r *ReportGormRepository) ListBySalon(
	ctx context.Context,
	salonID uint,
) ([]models.ReportLine, error) {

	var lines []models.ReportLine
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}

	return lines, nil
}

// Compile-time check
var _ report.Store = (*ReportGormRepository)(nil)
