package appointment

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/EspacoVitaServices/salon-scheduler/internal/audit"
	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/report"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/events"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/order"
)

// Percentual usado quando o funcionário não tem comissão cadastrada.
var defaultCommissionPercent = decimal.NewFromInt(10)

var oneHundred = decimal.NewFromInt(100)

// PaymentLinker gera um link de cobrança para um agendamento finalizado.
// Opcional: nil desliga a integração.
type PaymentLinker interface {
	PaymentLink(ctx context.Context, ap *models.Appointment) (string, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type FinalizeAppointmentInput struct {
	SalonID       uint
	UserID        *uint
	AppointmentID uint

	EmployeeName string

	// Itens incluídos direto no editor de finalização; entram pela mesma
	// trilha de baixa de estoque dos demais e nunca são baixados de novo.
	ExtraItems []models.Item
}

type FinalizeResult struct {
	Appointment *models.Appointment `json:"appointment"`
	PaymentURL  string              `json:"payment_url,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type FinalizeAppointment struct {
	repo     domain.Repository
	catalog  catalog.Gateway
	reports  report.Store
	bus      *events.Bus
	audit    *audit.Dispatcher
	payments PaymentLinker
}

func NewFinalizeAppointment(
	repo domain.Repository,
	gateway catalog.Gateway,
	reports report.Store,
	bus *events.Bus,
	audit *audit.Dispatcher,
	payments PaymentLinker,
) *FinalizeAppointment {
	return &FinalizeAppointment{
		repo:     repo,
		catalog:  gateway,
		reports:  reports,
		bus:      bus,
		audit:    audit,
		payments: payments,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *FinalizeAppointment) Execute(
	ctx context.Context,
	in FinalizeAppointmentInput,
) (*FinalizeResult, error) {

	// --------------------------------------------------
	// 1️⃣ Agendamento pendente
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanFinalize(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Funcionário responsável + percentual
	// --------------------------------------------------
	if in.EmployeeName == "" {
		return nil, httperr.ErrBusiness("missing_employee")
	}

	employee, err := uc.repo.FindEmployeeByName(ctx, in.SalonID, in.EmployeeName)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	percent := defaultCommissionPercent
	if employee.CommissionPercent != nil {
		percent = *employee.CommissionPercent
	}

	// --------------------------------------------------
	// 3️⃣ Itens do editor de finalização (baixa única)
	// --------------------------------------------------
	if len(in.ExtraItems) > 0 {
		if err := order.DecrementProducts(ctx, uc.catalog, in.SalonID, in.ExtraItems); err != nil {
			return nil, err
		}
		ap.Itens = append(ap.Itens, in.ExtraItems...)
	}

	// --------------------------------------------------
	// 4️⃣ + 5️⃣ Totais e comissão
	// --------------------------------------------------
	total := ap.Itens.Total()
	comissao := total.Mul(percent).Div(oneHundred).Round(2)

	// --------------------------------------------------
	// 6️⃣ Persistência em uma única atualização
	// --------------------------------------------------
	ap.Status = string(domain.StatusFinalizado)
	ap.FuncionarioNome = employee.Name
	ap.ValorTotal = &total
	ap.ComissaoFuncionario = &comissao

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		order.RestockProducts(ctx, uc.catalog, in.SalonID, in.ExtraItems)
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Linhas de relatório (idempotente por agendamento)
	// --------------------------------------------------
	lines := uc.buildReportLines(ctx, ap, percent)

	if _, err := uc.reports.AppendForAppointment(ctx, ap.ID, lines); err != nil {
		// o agendamento já está finalizado; a reemissão cobre esta janela
		log.Printf("report append failed for appointment %d: %v", ap.ID, err)
		return nil, httperr.ErrBusiness("report_write_failed")
	}

	// --------------------------------------------------
	// 8️⃣ Evento de domínio → grade do dia se reclassifica
	// --------------------------------------------------
	uc.bus.Publish(events.AppointmentFinalized{
		SalonID: in.SalonID,
		Date:    ap.Date,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.UserID,
		Action:   "appointment_finalized",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"total": total.String()},
	})

	result := &FinalizeResult{Appointment: ap}

	if uc.payments != nil {
		url, err := uc.payments.PaymentLink(ctx, ap)
		if err != nil {
			log.Printf("payment link failed for appointment %d: %v", ap.ID, err)
		} else {
			result.PaymentURL = url
		}
	}

	return result, nil
}

// buildReportLines deriva uma linha por item: custo unitário vem do catálogo
// (produtos: preço de compra; serviços: 0), comissão e lucro por linha.
func (uc *FinalizeAppointment) buildReportLines(
	ctx context.Context,
	ap *models.Appointment,
	percent decimal.Decimal,
) []models.ReportLine {

	lines := make([]models.ReportLine, 0, len(ap.Itens))

	for _, it := range ap.Itens {
		custo := decimal.Zero
		if it.Kind == models.KindProduto {
			if p, err := uc.catalog.GetProduct(ctx, ap.SalonID, it.CatalogID); err == nil {
				custo = p.PurchasePrice
			}
		}

		comissaoLinha := it.Preco.Mul(percent).Div(oneHundred).Round(2)
		lucro := it.Preco.Sub(custo).Sub(comissaoLinha)

		lines = append(lines, models.ReportLine{
			ID:                  uuid.NewString(),
			SalonID:             ap.SalonID,
			AppointmentID:       ap.ID,
			Data:                ap.Date,
			HoraInicio:          ap.Inicio,
			HoraFim:             ap.Fim,
			Cliente:             ap.Cliente,
			Funcionario:         ap.FuncionarioNome,
			ProdutoServico:      it.Nome,
			Valor:               it.Preco,
			Custo:               custo,
			Lucro:               lucro,
			ComissaoFuncionario: comissaoLinha,
			Status:              string(domain.StatusFinalizado),
		})
	}

	return lines
}
