//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"dive-booking-gateway/internal/infra"
	"dive-booking-gateway/internal/infra/wordpress"
	"dive-booking-gateway/internal/pkg/errs"
	"dive-booking-gateway/internal/usecase"
	usecasemock "dive-booking-gateway/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("GetProduct returns raw document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := usecasemock.NewMockProductGateway(ctrl)
		uc := usecase.NewProductUseCase(products, usecasemock.NewMockProductAuthProber(ctrl))

		products.EXPECT().ProductJSON(gomock.Any(), 4242).Return(json.RawMessage(`{"id":4242}`), nil).Times(1)

		got, err := uc.GetProduct(ctx, 4242)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":4242}`, string(got))

		_, err = uc.GetProduct(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidProductID)
	})

	t.Run("ProbeAuth reports every mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prober := usecasemock.NewMockProductAuthProber(ctrl)
		uc := usecase.NewProductUseCase(usecasemock.NewMockProductGateway(ctrl), prober)

		gomock.InOrder(
			prober.EXPECT().FetchProduct(gomock.Any(), 4242, wordpress.AuthBasic).
				Return(&wordpress.Response{Status: http.StatusUnauthorized}, nil),
			prober.EXPECT().FetchProduct(gomock.Any(), 4242, wordpress.AuthQuery).
				Return(nil, infra.UpstreamError{Kind: infra.KindUnreachable, Target: "https://shop.example.com"}),
		)

		got, err := uc.ProbeAuth(ctx, 4242)
		require.NoError(t, err)

		want := []usecase.AuthProbeResult{
			{Mode: "basic", Status: http.StatusUnauthorized, OK: false},
			{Mode: "query", Error: "UPSTREAM_UNREACHABLE: https://shop.example.com"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ProbeAuth mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ProbeAuth rejects invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := usecase.NewProductUseCase(usecasemock.NewMockProductGateway(ctrl), usecasemock.NewMockProductAuthProber(ctrl))

		_, err := uc.ProbeAuth(ctx, -5)
		assert.ErrorIs(t, err, errs.ErrInvalidProductID)
	})
}
