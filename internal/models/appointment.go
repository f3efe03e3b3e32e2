package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agendamento. Datas e horários são guardados como strings (dd/MM/yyyy e
// HH:MM) para manter o formato histórico dos registros legível.
type Appointment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Date   string `gorm:"size:10;index" json:"date"`
	Inicio string `gorm:"size:5" json:"inicio"`
	Fim    string `gorm:"size:5" json:"fim"`

	Cliente string `gorm:"size:100;not null" json:"cliente"`

	Itens ItemList `gorm:"type:jsonb" json:"itens"`

	Status string `gorm:"size:20;default:'Pendente'" json:"status"`

	// Preenchidos apenas na finalização.
	FuncionarioNome     string           `gorm:"size:100" json:"funcionario_nome,omitempty"`
	ValorTotal          *decimal.Decimal `gorm:"type:numeric(10,2)" json:"valor_total,omitempty"`
	ComissaoFuncionario *decimal.Decimal `gorm:"type:numeric(10,2)" json:"comissao_funcionario,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
