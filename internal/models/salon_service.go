package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Serviço do catálogo. Quantity existe apenas para exibição: serviços não
// têm semântica de estoque.
type SalonService struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Active      bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
