package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-turnos/internal/receipt"
)

type RenderReceipt struct {
	repo domain.Repository
	loc  *time.Location
}

func NewRenderReceipt(repo domain.Repository, loc *time.Location) *RenderReceipt {
	return &RenderReceipt{repo: repo, loc: loc}
}

// Execute returns the PDF comprobante of turno id.
func (uc *RenderReceipt) Execute(ctx context.Context, id uint) ([]byte, error) {
	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return receipt.Render(ap, uc.loc)
}
