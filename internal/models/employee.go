package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Funcionário do salão. O nome é a chave humana usada pelos agendamentos;
// o percentual de comissão alimenta a finalização.
type Employee struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Role  string `gorm:"size:50" json:"role"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Salary decimal.Decimal `gorm:"type:numeric(10,2)" json:"salary"`

	// 0–100; nil usa o percentual padrão na finalização.
	CommissionPercent *decimal.Decimal `gorm:"type:numeric(5,2)" json:"commission_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
