package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type ItemKind string

const (
	KindServico ItemKind = "servico"
	KindProduto ItemKind = "produto"
)

// Item é uma linha de serviço ou produto anexada a um agendamento. Nome e
// preço são congelados no momento da inclusão: edições posteriores do
// catálogo não alteram o histórico.
type Item struct {
	CatalogID uint
	Nome      string
	Preco     decimal.Decimal
	Kind      ItemKind
}

// Forma histórica no banco: [catalog_id, display_name, unit_price, kind].
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		it.CatalogID,
		it.Nome,
		json.Number(it.Preco.String()),
		string(it.Kind),
	})
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 4 {
		return fmt.Errorf("item: expected 4-element tuple, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &it.CatalogID); err != nil {
		return fmt.Errorf("item catalog_id: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &it.Nome); err != nil {
		return fmt.Errorf("item name: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &it.Preco); err != nil {
		// dados legados podem carregar preços não numéricos; contam como 0
		it.Preco = decimal.Zero
	}
	var kind string
	if err := json.Unmarshal(tuple[3], &kind); err != nil {
		return fmt.Errorf("item kind: %w", err)
	}
	it.Kind = ItemKind(kind)
	return nil
}

// ItemList é a lista ordenada de itens de um agendamento, persistida como
// jsonb na coluna itens.
type ItemList []Item

func (l ItemList) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l {
		total = total.Add(it.Preco)
	}
	return total
}

func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ItemList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = ItemList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("itens: unsupported column type %T", value)
	}
}
