package api

import (
	"errors"
	"net/http"

	reqdto "dive-booking-gateway/internal/handler/dto/request"
	resdto "dive-booking-gateway/internal/handler/dto/response"
	"dive-booking-gateway/internal/handler/httperr"
	"dive-booking-gateway/internal/pkg/errs"
	"dive-booking-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
}

func NewProductHandler(productUseCase usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// @Summary Get product
// @Description WooCommerce product document including meta_data
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := reqdto.ParseProductID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	product, err := h.productUseCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		abortUpstream(c, err, "Failed to load product")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", product)
}

// @Summary WooCommerce auth probe
// @Description Fetches the product once per auth scheme and reports which ones the host accepts
// @Tags debug
// @Produce json
// @Security BearerAuth
// @Param product_id query int true "Product ID"
// @Success 200 {object} resdto.AuthProbeListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /api/debug/woocommerce-auth [get]
func (h *ProductHandler) ProbeAuth(c *gin.Context) {
	id, err := reqdto.ParseProductID(c.Query("product_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	results, err := h.productUseCase.ProbeAuth(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidProductID) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Auth probe failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthProbe(id, results))
}
