package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

func TestItemMarshalTuple(t *testing.T) {
	it := models.Item{
		CatalogID: 7,
		Nome:      "Corte Feminino",
		Preco:     decimal.RequireFromString("80.50"),
		Kind:      models.KindServico,
	}

	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `[7,"Corte Feminino",80.5,"servico"]`
	if string(b) != want {
		t.Errorf("marshal = %s, want %s", b, want)
	}
}

func TestItemUnmarshalTuple(t *testing.T) {
	var it models.Item
	if err := json.Unmarshal([]byte(`[3,"Shampoo Reparador",45.90,"produto"]`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if it.CatalogID != 3 {
		t.Errorf("CatalogID = %d, want 3", it.CatalogID)
	}
	if it.Nome != "Shampoo Reparador" {
		t.Errorf("Nome = %q", it.Nome)
	}
	if !it.Preco.Equal(decimal.RequireFromString("45.90")) {
		t.Errorf("Preco = %s, want 45.90", it.Preco)
	}
	if it.Kind != models.KindProduto {
		t.Errorf("Kind = %q, want produto", it.Kind)
	}
}

func TestItemUnmarshalLegacyBadPrice(t *testing.T) {
	// registros antigos podem carregar preço não numérico; vale 0
	var it models.Item
	if err := json.Unmarshal([]byte(`[3,"Escova","gratis","servico"]`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !it.Preco.IsZero() {
		t.Errorf("Preco = %s, want 0", it.Preco)
	}
}

func TestItemUnmarshalWrongArity(t *testing.T) {
	var it models.Item
	if err := json.Unmarshal([]byte(`[3,"Escova"]`), &it); err == nil {
		t.Error("tupla de 2 elementos deveria falhar")
	}
}

func TestItemListTotal(t *testing.T) {
	list := models.ItemList{
		{Nome: "Corte", Preco: decimal.RequireFromString("80.00"), Kind: models.KindServico},
		{Nome: "Shampoo", Preco: decimal.RequireFromString("45.90"), Kind: models.KindProduto},
		{Nome: "Escova", Preco: decimal.RequireFromString("60.10"), Kind: models.KindServico},
	}

	if got := list.Total(); !got.Equal(decimal.RequireFromString("186.00")) {
		t.Errorf("Total() = %s, want 186.00", got)
	}

	if got := (models.ItemList{}).Total(); !got.IsZero() {
		t.Errorf("Total() vazio = %s, want 0", got)
	}
}

func TestItemListScanRoundTrip(t *testing.T) {
	list := models.ItemList{
		{CatalogID: 1, Nome: "Corte", Preco: decimal.RequireFromString("80"), Kind: models.KindServico},
		{CatalogID: 2, Nome: "Shampoo", Preco: decimal.RequireFromString("45.90"), Kind: models.KindProduto},
	}

	v, err := list.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var back models.ItemList
	if err := back.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(back) != 2 {
		t.Fatalf("len = %d, want 2", len(back))
	}
	if back[0].Nome != "Corte" || back[1].Kind != models.KindProduto {
		t.Errorf("round trip perdeu campos: %+v", back)
	}
}

func TestItemListScanNil(t *testing.T) {
	var list models.ItemList
	if err := list.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("scan nil deveria produzir lista vazia, got %#v", list)
	}
}
