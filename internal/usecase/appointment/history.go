package appointment

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/report"
	domain "github.com/EspacoVitaServices/salon-scheduler/internal/domain/schedule"
	"github.com/EspacoVitaServices/salon-scheduler/internal/dto"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// ======================================================
// FILTER
// ======================================================

type HistoryFilter struct {
	From string // dd/MM/yyyy, inclusivo
	To   string // dd/MM/yyyy, inclusivo

	Cliente     string // substring, case-insensitive
	Funcionario string
	Item        string
}

// ======================================================
// USE CASE
// ======================================================

// History projeta o log de linhas de finalização: filtros, ordenação por
// data decrescente (horário de início crescente dentro do dia) e total
// acumulado dos valores exibidos.
type History struct {
	reports report.Store
}

func NewHistory(reports report.Store) *History {
	return &History{reports: reports}
}

func (uc *History) Execute(
	ctx context.Context,
	salonID uint,
	filter HistoryFilter,
) (*dto.HistoryDTO, error) {

	var from, to time.Time
	var err error

	if filter.From != "" {
		if from, err = domain.ParseDate(filter.From); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	if filter.To != "" {
		if to, err = domain.ParseDate(filter.To); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	lines, err := uc.reports.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	var matched []models.ReportLine
	for _, line := range lines {
		if !matches(line, filter, from, to) {
			continue
		}
		matched = append(matched, line)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		di, _ := domain.ParseDate(matched[i].Data)
		dj, _ := domain.ParseDate(matched[j].Data)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return domain.MinutesOf(matched[i].HoraInicio) < domain.MinutesOf(matched[j].HoraInicio)
	})

	out := &dto.HistoryDTO{
		Rows:  make([]dto.HistoryRowDTO, 0, len(matched)),
		Total: decimal.Zero,
	}

	for _, line := range matched {
		out.Total = out.Total.Add(line.Valor)
		out.Rows = append(out.Rows, dto.HistoryRowDTO{
			Data:           line.Data,
			HoraInicio:     line.HoraInicio,
			HoraFim:        line.HoraFim,
			Cliente:        line.Cliente,
			Funcionario:    line.Funcionario,
			ProdutoServico: line.ProdutoServico,
			Valor:          line.Valor,
			RunningTotal:   out.Total,
		})
	}

	return out, nil
}

func matches(
	line models.ReportLine,
	filter HistoryFilter,
	from time.Time,
	to time.Time,
) bool {

	if !from.IsZero() || !to.IsZero() {
		d, err := domain.ParseDate(line.Data)
		if err != nil {
			return false
		}
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
	}

	if !containsFold(line.Cliente, filter.Cliente) {
		return false
	}
	if !containsFold(line.Funcionario, filter.Funcionario) {
		return false
	}
	if !containsFold(line.ProdutoServico, filter.Item) {
		return false
	}

	return true
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}
