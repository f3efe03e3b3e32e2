package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Brand string `gorm:"size:100" json:"brand"`

	// Estoque em mãos; nunca fica negativo (toda mutação passa pelo gateway).
	Quantity int `json:"quantity"`

	PurchasePrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"purchase_price"`
	SalePrice     decimal.Decimal `gorm:"type:numeric(10,2)" json:"sale_price"`
	Category      string          `gorm:"size:50" json:"category"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
