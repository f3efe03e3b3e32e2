package order

import (
	"context"
	"log"

	"github.com/EspacoVitaServices/salon-scheduler/internal/domain/catalog"
	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// Todo ajuste de estoque acoplado a itens passa por aqui, em três situações:
// inclusão na criação, inclusão no editor de finalização e remoção. Cada
// linha de produto é baixada exatamente uma vez no momento em que entra na
// lista, então a finalização nunca precisa baixar de novo.

// DecrementProducts baixa uma unidade por linha de produto. Qualquer falha
// desfaz as baixas já feitas e devolve o erro: nunca há inclusão parcial.
func DecrementProducts(
	ctx context.Context,
	gateway catalog.Gateway,
	salonID uint,
	items []models.Item,
) error {

	var decremented []models.Item

	for _, it := range items {
		if it.Kind != models.KindProduto {
			continue
		}

		if err := gateway.AdjustStock(ctx, salonID, it.Kind, it.CatalogID, -1); err != nil {
			RestockProducts(ctx, gateway, salonID, decremented)
			return err
		}

		decremented = append(decremented, it)
	}

	return nil
}

// RestockProducts devolve uma unidade por linha de produto (remoção de item
// ou exclusão de agendamento pendente).
func RestockProducts(
	ctx context.Context,
	gateway catalog.Gateway,
	salonID uint,
	items []models.Item,
) {
	for _, it := range items {
		if it.Kind != models.KindProduto {
			continue
		}

		if err := gateway.AdjustStock(ctx, salonID, it.Kind, it.CatalogID, +1); err != nil {
			log.Printf("restock failed for product %d: %v", it.CatalogID, err)
		}
	}
}
