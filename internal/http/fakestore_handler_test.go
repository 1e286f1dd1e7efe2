package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shreyat81/e-com-mart/internal/fakestore"
)

func fakeStoreServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[
			{"id": 1, "title": "Backpack", "price": 100, "category": "men's clothing",
			 "image": "img", "rating": {"rate": 4.0, "count": 10}}
		]`))
	}))
}

func TestFakeStoreProducts(t *testing.T) {
	upstream := fakeStoreServer(t)
	defer upstream.Close()

	handler := NewFakeStoreHandler(fakestore.NewClient(upstream.URL), productRepoMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/fakestore/products", nil)

	handler.Products(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response FakeStoreProductsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Count != 1 || len(response.Products) != 1 {
		t.Fatalf("Expected 1 product, got %+v", response)
	}
	if response.Products[0].ID != 101 {
		t.Errorf("Expected offset id 101, got %d", response.Products[0].ID)
	}
}

func TestFakeStoreCategories(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/categories" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`["electronics", "men's clothing"]`))
	}))
	defer upstream.Close()

	handler := NewFakeStoreHandler(fakestore.NewClient(upstream.URL), productRepoMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/fakestore/categories", nil)

	handler.Categories(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response FakeStoreCategoriesResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Categories) != 2 || response.Categories[0] != "Electronics" {
		t.Errorf("Expected capitalized categories, got %+v", response.Categories)
	}
}

func TestFakeStoreImport_Success(t *testing.T) {
	upstream := fakeStoreServer(t)
	defer upstream.Close()

	handler := NewFakeStoreHandler(fakestore.NewClient(upstream.URL), productRepoMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/fakestore/import", nil)

	handler.Import(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response FakeStoreImportResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success || response.Count != 1 {
		t.Errorf("Unexpected import response: %+v", response)
	}
}

func TestFakeStoreImport_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	handler := NewFakeStoreHandler(fakestore.NewClient(upstream.URL), productRepoMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/fakestore/import", nil)

	handler.Import(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
