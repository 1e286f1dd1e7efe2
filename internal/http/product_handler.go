package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shreyat81/e-com-mart/internal/catalog"
	"github.com/shreyat81/e-com-mart/internal/domain"
)

type ProductHandler struct {
	catalog catalog.ProductRepository
	timeout time.Duration
}

func NewProductHandler(repo catalog.ProductRepository, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: repo,
		timeout: timeout,
	}
}

type ProductsResponse struct {
	Success  bool              `json:"success"`
	Products []*domain.Product `json:"products"`
}

type ProductResponse struct {
	Success         bool              `json:"success"`
	Product         *domain.Product   `json:"product"`
	RelatedProducts []*domain.Product `json:"relatedProducts"`
}

// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	f := catalog.Filter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Brand:    q.Get("brand"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
	}

	if v := q.Get("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "minPrice must be a number")
			return
		}
		f.MinPrice = &p
	}
	if v := q.Get("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "maxPrice must be a number")
			return
		}
		f.MaxPrice = &p
	}

	products, err := h.catalog.List(ctx, f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching products")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Success: true, Products: products})
}

// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "product id must be a number")
		return
	}

	product, err := h.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "error fetching product")
		return
	}

	related, err := h.catalog.Related(ctx, product, 4)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching related products")
		return
	}
	if related == nil {
		related = []*domain.Product{}
	}

	respondJSON(w, http.StatusOK, ProductResponse{
		Success:         true,
		Product:         product,
		RelatedProducts: related,
	})
}

// GET /api/products/category/{category}
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.List(ctx, catalog.Filter{Category: chi.URLParam(r, "category")})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching products by category")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Success: true, Products: products})
}
