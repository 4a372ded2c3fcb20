// Package payment creates checkout links for a turno's price.
package payment

import (
	"context"
	"fmt"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

const currencyARS = "ARS"

type Checkout struct {
	PreferenceID string `json:"preferenceId"`
	InitPoint    string `json:"initPoint"`
	SandboxPoint string `json:"sandboxInitPoint,omitempty"`
}

type Gateway interface {
	CreateCheckout(ctx context.Context, ap *models.Appointment) (*Checkout, error)
}

type MercadoPago struct {
	client  preference.Client
	baseURL string
}

func NewMercadoPago(accessToken, publicBaseURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{
		client:  preference.NewClient(cfg),
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, ap *models.Appointment) (*Checkout, error) {
	res, err := m.client.Create(ctx, preferenceRequest(ap, m.baseURL))
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}
	return &Checkout{
		PreferenceID: res.ID,
		InitPoint:    res.InitPoint,
		SandboxPoint: res.SandboxInitPoint,
	}, nil
}

func preferenceRequest(ap *models.Appointment, baseURL string) preference.Request {
	ref := fmt.Sprintf("turno-%d", ap.ID)

	req := preference.Request{
		ExternalReference: ref,
		Items: []preference.ItemRequest{
			{
				ID:          ref,
				Title:       fmt.Sprintf("Turno %s con %s", ap.Type, ap.Barber),
				Description: ap.Services,
				Quantity:    1,
				UnitPrice:   float64(ap.Price),
				CurrencyID:  currencyARS,
			},
		},
	}

	if baseURL != "" {
		back := fmt.Sprintf("%s/turnos/%d", baseURL, ap.ID)
		req.BackURLs = &preference.BackURLsRequest{
			Success: back,
			Pending: back,
			Failure: back,
		}
	}

	return req
}

var _ Gateway = (*MercadoPago)(nil)
