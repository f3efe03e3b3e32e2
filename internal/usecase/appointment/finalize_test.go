package appointment_test

import (
	"context"
	"testing"

	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/appointment"
)

func seedPending(repo *fakeRepo, items ...models.Item) *models.Appointment {
	ap := &models.Appointment{
		SalonID: salonID,
		Date:    "10/09/2026",
		Inicio:  "10:00",
		Fim:     "11:00",
		Cliente: "Maria",
		Itens:   append(models.ItemList{}, items...),
		Status:  "Pendente",
	}
	_ = repo.CreateAppointment(context.Background(), ap)
	return ap
}

type stubPayments struct {
	url string
	err error
}

func (s stubPayments) PaymentLink(context.Context, *models.Appointment) (string, error) {
	return s.url, s.err
}

func TestFinalizeAppointmentDefaultCommission(t *testing.T) {
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana"}}

	catalog := newFakeCatalog()
	reports := newFakeReports()

	ap := seedPending(repo,
		serviceItem(1, "Corte", "80.00"),
		serviceItem(2, "Escova", "60.00"),
	)

	uc := appointment.NewFinalizeAppointment(repo, catalog, reports, nil, nil, nil)

	result, err := uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Ana",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := result.Appointment

	if got.Status != "Finalizado" {
		t.Errorf("status = %q, want Finalizado", got.Status)
	}
	if got.FuncionarioNome != "Ana" {
		t.Errorf("funcionario = %q, want Ana", got.FuncionarioNome)
	}
	if got.ValorTotal == nil || !got.ValorTotal.Equal(price("140.00")) {
		t.Errorf("total = %v, want 140.00", got.ValorTotal)
	}

	// sem percentual cadastrado vale 10%
	if got.ComissaoFuncionario == nil || !got.ComissaoFuncionario.Equal(price("14.00")) {
		t.Errorf("comissao = %v, want 14.00", got.ComissaoFuncionario)
	}
}

func TestFinalizeAppointmentCustomCommissionAndReportLines(t *testing.T) {
	percent := price("25")
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana", CommissionPercent: &percent}}

	catalog := newFakeCatalog()
	catalog.products[10] = &models.Product{
		ID: 10, SalonID: salonID, Name: "Shampoo",
		Quantity:      5,
		PurchasePrice: price("20.00"),
		SalePrice:     price("45.90"),
	}

	reports := newFakeReports()

	ap := seedPending(repo,
		serviceItem(1, "Corte", "80.00"),
		productItem(10, "Shampoo", "45.90"),
	)

	uc := appointment.NewFinalizeAppointment(repo, catalog, reports, nil, nil, nil)

	result, err := uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "ana", // lookup é case-insensitive
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	// 125.90 * 25% = 31.48 (arredondado em 2 casas)
	if !result.Appointment.ComissaoFuncionario.Equal(price("31.48")) {
		t.Errorf("comissao = %s, want 31.48", result.Appointment.ComissaoFuncionario)
	}

	lines := reports.lines[ap.ID]
	if len(lines) != 2 {
		t.Fatalf("linhas de relatório = %d, want 2", len(lines))
	}

	corte := lines[0]
	if corte.ProdutoServico != "Corte" {
		t.Fatalf("primeira linha = %q, want Corte", corte.ProdutoServico)
	}
	// serviço: custo 0, comissão 80*25% = 20, lucro 80-0-20 = 60
	if !corte.Custo.IsZero() || !corte.ComissaoFuncionario.Equal(price("20.00")) || !corte.Lucro.Equal(price("60.00")) {
		t.Errorf("linha Corte: custo=%s comissao=%s lucro=%s", corte.Custo, corte.ComissaoFuncionario, corte.Lucro)
	}

	shampoo := lines[1]
	// produto: custo = preço de compra; comissão 45.90*25% = 11.48 (round)
	// lucro = 45.90 - 20.00 - 11.48 = 14.42
	if !shampoo.Custo.Equal(price("20.00")) {
		t.Errorf("custo = %s, want 20.00", shampoo.Custo)
	}
	if !shampoo.ComissaoFuncionario.Equal(price("11.48")) {
		t.Errorf("comissao da linha = %s, want 11.48", shampoo.ComissaoFuncionario)
	}
	if !shampoo.Lucro.Equal(price("14.42")) {
		t.Errorf("lucro = %s, want 14.42", shampoo.Lucro)
	}

	for _, line := range lines {
		if line.ID == "" {
			t.Error("linha sem id")
		}
		if line.AppointmentID != ap.ID {
			t.Errorf("linha com appointment_id %d, want %d", line.AppointmentID, ap.ID)
		}
		if line.Funcionario != "Ana" {
			t.Errorf("funcionario da linha = %q, want Ana", line.Funcionario)
		}
	}
}

func TestFinalizeAppointmentExtraItemsDecrementOnce(t *testing.T) {
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana"}}

	catalog := newFakeCatalog()
	catalog.products[10] = &models.Product{
		ID: 10, SalonID: salonID, Name: "Shampoo",
		Quantity:  2,
		SalePrice: price("45.90"),
	}

	reports := newFakeReports()

	ap := seedPending(repo, serviceItem(1, "Corte", "80.00"))

	uc := appointment.NewFinalizeAppointment(repo, catalog, reports, nil, nil, nil)

	result, err := uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Ana",
		ExtraItems:    []models.Item{productItem(10, "Shampoo", "45.90")},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	// o item extra entra na comanda e baixa exatamente uma unidade
	if len(result.Appointment.Itens) != 2 {
		t.Errorf("itens = %d, want 2", len(result.Appointment.Itens))
	}
	if catalog.products[10].Quantity != 1 {
		t.Errorf("estoque = %d, want 1", catalog.products[10].Quantity)
	}
	if !result.Appointment.ValorTotal.Equal(price("125.90")) {
		t.Errorf("total = %s, want 125.90", result.Appointment.ValorTotal)
	}
}

func TestFinalizeAppointmentGuards(t *testing.T) {
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana"}}
	catalog := newFakeCatalog()
	reports := newFakeReports()

	ap := seedPending(repo, serviceItem(1, "Corte", "80.00"))

	uc := appointment.NewFinalizeAppointment(repo, catalog, reports, nil, nil, nil)

	_, err := uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: 999,
		EmployeeName:  "Ana",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("err = %v, want appointment_not_found", err)
	}

	_, err = uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
	})
	if !httperr.IsBusiness(err, "missing_employee") {
		t.Errorf("err = %v, want missing_employee", err)
	}

	_, err = uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Bia",
	})
	if !httperr.IsBusiness(err, "employee_not_found") {
		t.Errorf("err = %v, want employee_not_found", err)
	}

	// primeira finalização passa, segunda cai em invalid_state
	if _, err := uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Ana",
	}); err != nil {
		t.Fatalf("primeira finalização: %v", err)
	}

	_, err = uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Ana",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("err = %v, want invalid_state", err)
	}
}

func TestFinalizeAppointmentPaymentLink(t *testing.T) {
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana"}}
	catalog := newFakeCatalog()
	reports := newFakeReports()

	ap := seedPending(repo, serviceItem(1, "Corte", "80.00"))

	uc := appointment.NewFinalizeAppointment(
		repo, catalog, reports, nil, nil,
		stubPayments{url: "https://mp.example/checkout/abc"},
	)

	result, err := uc.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Ana",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if result.PaymentURL != "https://mp.example/checkout/abc" {
		t.Errorf("payment url = %q", result.PaymentURL)
	}
}

func TestRetryReportIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana"}}
	catalog := newFakeCatalog()
	reports := newFakeReports()

	ap := seedPending(repo, serviceItem(1, "Corte", "80.00"))

	finalize := appointment.NewFinalizeAppointment(repo, catalog, reports, nil, nil, nil)
	if _, err := finalize.Execute(context.Background(), appointment.FinalizeAppointmentInput{
		SalonID:       salonID,
		AppointmentID: ap.ID,
		EmployeeName:  "Ana",
	}); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	retry := appointment.NewRetryReport(repo, catalog, reports)

	// as linhas já existem: nada é regravado
	written, err := retry.Execute(context.Background(), salonID, ap.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if written {
		t.Error("retry não deveria regravar linhas existentes")
	}
	if len(reports.lines[ap.ID]) != 1 {
		t.Errorf("linhas = %d, want 1", len(reports.lines[ap.ID]))
	}
}

func TestRetryReportWritesMissingLines(t *testing.T) {
	repo := newFakeRepo()
	repo.employees = []models.Employee{{ID: 1, SalonID: salonID, Name: "Ana"}}
	catalog := newFakeCatalog()
	reports := newFakeReports()

	// estado pós-falha: finalizado no armazém, relatório vazio
	percent := price("25")
	repo.employees[0].CommissionPercent = &percent

	ap := seedPending(repo, serviceItem(1, "Corte", "80.00"))
	ap.Status = "Finalizado"
	ap.FuncionarioNome = "Ana"
	total := price("80.00")
	ap.ValorTotal = &total
	_ = repo.UpdateAppointment(context.Background(), ap)

	retry := appointment.NewRetryReport(repo, catalog, reports)

	written, err := retry.Execute(context.Background(), salonID, ap.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !written {
		t.Fatal("retry deveria gravar as linhas que faltavam")
	}

	lines := reports.lines[ap.ID]
	if len(lines) != 1 {
		t.Fatalf("linhas = %d, want 1", len(lines))
	}
	if !lines[0].ComissaoFuncionario.Equal(price("20.00")) {
		t.Errorf("comissao reemitida = %s, want 20.00 (percentual atual)", lines[0].ComissaoFuncionario)
	}
}

func TestRetryReportRejectsPending(t *testing.T) {
	repo := newFakeRepo()
	catalog := newFakeCatalog()
	reports := newFakeReports()

	ap := seedPending(repo, serviceItem(1, "Corte", "80.00"))

	retry := appointment.NewRetryReport(repo, catalog, reports)

	_, err := retry.Execute(context.Background(), salonID, ap.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("err = %v, want invalid_state", err)
	}
}
