package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"context"
	"encoding/json"

	"dive-booking-gateway/internal/infra/wordpress"
	"dive-booking-gateway/internal/pkg/errs"
)

type ProductAuthProber interface {
	FetchProduct(ctx context.Context, id int, mode wordpress.AuthMode) (*wordpress.Response, error)
}

type AuthProbeResult struct {
	Mode   string
	Status int
	OK     bool
	Error  string
}

type ProductUseCase interface {
	GetProduct(ctx context.Context, id int) (json.RawMessage, error)
	// ProbeAuth fetches the product once per WooCommerce auth mode and reports each outcome.
	ProbeAuth(ctx context.Context, id int) ([]AuthProbeResult, error)
}

type productUseCaseImpl struct {
	products ProductGateway
	prober   ProductAuthProber
}

func NewProductUseCase(products ProductGateway, prober ProductAuthProber) ProductUseCase {
	return &productUseCaseImpl{
		products: products,
		prober:   prober,
	}
}

func (p *productUseCaseImpl) GetProduct(ctx context.Context, id int) (json.RawMessage, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidProductID
	}
	return p.products.ProductJSON(ctx, id)
}

func (p *productUseCaseImpl) ProbeAuth(ctx context.Context, id int) ([]AuthProbeResult, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidProductID
	}

	results := make([]AuthProbeResult, 0, len(wordpress.AuthModes))
	for _, mode := range wordpress.AuthModes {
		r := AuthProbeResult{Mode: string(mode)}
		resp, err := p.prober.FetchProduct(ctx, id, mode)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Status = resp.Status
			r.OK = resp.OK()
		}
		results = append(results, r)
	}
	return results, nil
}
