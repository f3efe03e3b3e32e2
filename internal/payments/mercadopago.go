package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/EspacoVitaServices/salon-scheduler/internal/models"
)

// MercadoPago cria uma preferência de cobrança para o total de um
// agendamento finalizado. A referência externa carrega o id do agendamento
// para conciliação.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{prefs: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) PaymentLink(
	ctx context.Context,
	ap *models.Appointment,
) (string, error) {

	if ap.ValorTotal == nil {
		return "", fmt.Errorf("appointment %d has no total", ap.ID)
	}

	total, _ := ap.ValorTotal.Float64()

	resp, err := m.prefs.Create(ctx, preference.Request{
		ExternalReference: fmt.Sprintf("appointment-%d", ap.ID),
		Items: []preference.ItemRequest{
			{
				Title:     fmt.Sprintf("Atendimento de %s em %s", ap.Cliente, ap.Date),
				Quantity:  1,
				UnitPrice: total,
			},
		},
	})
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
