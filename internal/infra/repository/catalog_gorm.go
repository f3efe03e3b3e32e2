package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	"github.com/EspacoVitaServices/salon-scheduler/internal/httperr"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Stock
// --------------------------------------------------

// AdjustStock lê a quantidade atual com lock de linha, soma delta e só
// persiste resultado ≥ 0. Serviços não têm semântica de estoque.
func (r *CatalogGormRepository) AdjustStock(
	ctx context.Context,
	salonID uint,
	kind models.ItemKind,
	id uint,
	delta int,
) error {

	if kind != models.KindProduto {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var product models.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND salon_id = ?", id, salonID).
			First(&product).Error; err != nil {
			return err
		}

		next := product.Quantity + delta
		if next < 0 {
			return httperr.ErrBusiness("insufficient_stock")
		}

		return tx.Model(&product).Update("quantity", next).Error
	})
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	id uint,
) (*models.SalonService, error) {

	var service models.SalonService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *CatalogGormRepository) GetProduct(
	ctx context.Context,
	salonID uint,
	id uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}

// Compile-time check
var _ catalog.Gateway = (*CatalogGormRepository)(nil)
