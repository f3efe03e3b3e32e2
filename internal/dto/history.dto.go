package dto

import "github.com/shopspring/decimal"

type HistoryRowDTO struct {
	Data           string `json:"data"`
	HoraInicio     string `json:"hora_inicio"`
	HoraFim        string `json:"hora_fim"`
	Cliente        string `json:"cliente"`
	Funcionario    string `json:"funcionario"`
	ProdutoServico string `json:"produto_servico"`

	Valor decimal.Decimal `json:"valor"`

	// Soma acumulada dos valores exibidos até esta linha.
	RunningTotal decimal.Decimal `json:"running_total"`
}

type HistoryDTO struct {
	Rows  []HistoryRowDTO `json:"rows"`
	Total decimal.Decimal `json:"total"`
}
