package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shreyat81/e-com-mart/internal/catalog"
	"github.com/shreyat81/e-com-mart/internal/domain"
	"github.com/shreyat81/e-com-mart/internal/fakestore"
)

type FakeStoreHandler struct {
	client  *fakestore.Client
	catalog catalog.ProductRepository
	timeout time.Duration
}

func NewFakeStoreHandler(client *fakestore.Client, repo catalog.ProductRepository, timeout time.Duration) *FakeStoreHandler {
	return &FakeStoreHandler{
		client:  client,
		catalog: repo,
		timeout: timeout,
	}
}

type FakeStoreProductsResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Products []*domain.Product `json:"products"`
}

type FakeStoreCategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type FakeStoreImportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// GET /api/fakestore/products
func (h *FakeStoreHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.client.Products(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch products from Fake Store API")
		return
	}

	respondJSON(w, http.StatusOK, FakeStoreProductsResponse{
		Success:  true,
		Count:    len(products),
		Products: products,
	})
}

// GET /api/fakestore/categories
func (h *FakeStoreHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.client.Categories(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch categories from Fake Store API")
		return
	}

	respondJSON(w, http.StatusOK, FakeStoreCategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// POST /api/fakestore/import replaces previously imported products (ids at
// or above the import offset) with a fresh fetch.
func (h *FakeStoreHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.client.Products(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch products from Fake Store API")
		return
	}

	if _, err := h.catalog.DeleteFromID(ctx, fakestore.IDOffset); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear imported products")
		return
	}

	if err := h.catalog.InsertMany(ctx, products); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to import products")
		return
	}

	respondJSON(w, http.StatusOK, FakeStoreImportResponse{
		Success: true,
		Message: fmt.Sprintf("successfully imported %d products from Fake Store API", len(products)),
		Count:   len(products),
	})
}
