package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/service"
)

type productHandler struct {
	productSvc service.ProductService
	parser     *query.Parser
}

func newProductHandler(productSvc service.ProductService, parser *query.Parser) *productHandler {
	return &productHandler{
		productSvc: productSvc,
		parser:     parser,
	}
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	filter, err := h.parser.Parse(r.URL.Query())
	if err != nil {
		return fmt.Errorf("parse product filter: %w", err)
	}

	result, err := h.productSvc.ListProducts(r.Context(), filter)
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	return writeJSON(w, http.StatusOK, newProductListResponse(result))
}

func (h *productHandler) ListProductFilters(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.productSvc.ProductFacets(r.Context())
	if err != nil {
		return fmt.Errorf("product service product facets: %w", err)
	}

	return writeJSON(w, http.StatusOK, newFacetSummaryResponse(summary))
}

func (h *productHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.productSvc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	return writeJSON(w, http.StatusOK, newProductResponse(product))
}
