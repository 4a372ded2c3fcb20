package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/payment"
)

type StartPayment struct {
	repo    domain.Repository
	gateway payment.Gateway
}

// NewStartPayment accepts a nil gateway; Execute then reports
// payment_unavailable.
func NewStartPayment(repo domain.Repository, gateway payment.Gateway) *StartPayment {
	return &StartPayment{repo: repo, gateway: gateway}
}

func (uc *StartPayment) Execute(ctx context.Context, id uint) (*payment.Checkout, error) {
	if uc.gateway == nil {
		return nil, httperr.ErrBusinessf(httperr.CodePaymentUnavailable, "Los pagos en línea no están habilitados")
	}

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.gateway.CreateCheckout(ctx, ap)
}
