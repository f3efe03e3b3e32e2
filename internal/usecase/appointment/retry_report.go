package appointment

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/report"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
)

// RetryReport reemite as linhas de relatório de um agendamento finalizado
// cuja gravação falhou depois da atualização de status. A chave de
// idempotência é o id do agendamento, então nada é duplicado.
type RetryReport struct {
	repo    domain.Repository
	catalog catalog.Gateway
	reports report.Store
}

func NewRetryReport(
	repo domain.Repository,
	gateway catalog.Gateway,
	reports report.Store,
) *RetryReport {
	return &RetryReport{
		repo:    repo,
		catalog: gateway,
		reports: reports,
	}
}

func (uc *RetryReport) Execute(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (written bool, err error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return false, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status != string(domain.StatusFinalizado) {
		return false, httperr.ErrBusiness("invalid_state")
	}

	percent := defaultCommissionPercent
	if employee, err := uc.repo.FindEmployeeByName(ctx, salonID, ap.FuncionarioNome); err == nil {
		if employee.CommissionPercent != nil {
			percent = *employee.CommissionPercent
		}
	}

	builder := &FinalizeAppointment{repo: uc.repo, catalog: uc.catalog}
	lines := builder.buildReportLines(ctx, ap, percent)

	return uc.reports.AppendForAppointment(ctx, ap.ID, lines)
}
