package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickkart/quickkart-backend/api/responses"
	"github.com/quickkart/quickkart-backend/api/validators"
	cartsvc "github.com/quickkart/quickkart-backend/internal/cart"
	"github.com/quickkart/quickkart-backend/internal/catalog"
	pkgerrors "github.com/quickkart/quickkart-backend/pkg/errors"
	"github.com/quickkart/quickkart-backend/pkg/logger"
	"github.com/quickkart/quickkart-backend/pkg/metrics"
)

type cartResponse struct {
	Items   []cartsvc.Line  `json:"items"`
	Summary cartsvc.Summary `json:"summary"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func newCartResponse(svc cartsvc.Service) cartResponse {
	return cartResponse{Items: svc.Items(), Summary: svc.Summary()}
}

// CartGet returns the current cart lines with their derived totals.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(svc))
	}
}

// CartAddItem resolves the product in the catalog and adds one unit of it,
// merging into the existing line when the product is already carted.
func CartAddItem(svc cartsvc.Service, cat catalog.Service, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var body addCartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := cat.GetProduct(r.Context(), body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.Add(product)
		m.IncCartMutation("add")
		responses.WriteSuccess(w, newCartResponse(svc))
	}
}

// CartRemoveItem decrements the line for the product id, deleting it when the
// quantity hits zero. An id the cart does not hold is a no-op.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.Remove(chi.URLParam(r, "productID"))
		m.IncCartMutation("remove")
		responses.WriteSuccess(w, newCartResponse(svc))
	}
}

// CartDeleteItem drops the whole line regardless of quantity.
func CartDeleteItem(svc cartsvc.Service, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.Delete(chi.URLParam(r, "productID"))
		m.IncCartMutation("delete")
		responses.WriteSuccess(w, newCartResponse(svc))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.Clear()
		m.IncCartMutation("clear")
		responses.WriteSuccess(w, newCartResponse(svc))
	}
}
