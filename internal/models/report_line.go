package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Linha de relatório emitida na finalização, uma por item. Nunca é alterada
// depois de gravada; apagar o agendamento não remove as linhas.
type ReportLine struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID uint   `gorm:"index" json:"salon_id"`

	// Chave de idempotência para a reemissão do relatório.
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	Data       string `gorm:"size:10" json:"data"`
	HoraInicio string `gorm:"size:5" json:"hora_inicio"`
	HoraFim    string `gorm:"size:5" json:"hora_fim"`

	Cliente        string `gorm:"size:100" json:"cliente"`
	Funcionario    string `gorm:"size:100" json:"funcionario"`
	ProdutoServico string `gorm:"size:100" json:"produto_servico"`

	Valor               decimal.Decimal `gorm:"type:numeric(10,2)" json:"valor"`
	Custo               decimal.Decimal `gorm:"type:numeric(10,2)" json:"custo"`
	Lucro               decimal.Decimal `gorm:"type:numeric(10,2)" json:"lucro"`
	ComissaoFuncionario decimal.Decimal `gorm:"type:numeric(10,2)" json:"comissao_funcionario"`

	Status string `gorm:"size:20;default:'Finalizado'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
