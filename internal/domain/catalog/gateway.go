package catalog

import (
	"context"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// Gateway é o dono das quantidades em mãos: toda mutação de estoque passa
// por AdjustStock.
type Gateway interface {
	// AdjustStock soma delta ao estoque do produto e persiste apenas se o
	// resultado for ≥ 0; caso contrário devolve insufficient_stock. Para
	// kind=servico é um no-op que sucede em silêncio.
	AdjustStock(
		ctx context.Context,
		salonID uint,
		kind models.ItemKind,
		id uint,
		delta int,
	) error

	GetService(
		ctx context.Context,
		salonID uint,
		id uint,
	) (*models.SalonService, error)

	GetProduct(
		ctx context.Context,
		salonID uint,
		id uint,
	) (*models.Product, error)
}
