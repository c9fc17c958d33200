package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	cartsvc "github.com/quickkart/quickkart-backend/internal/cart"
	"github.com/quickkart/quickkart-backend/internal/catalog"
)

func newCartRouter(t *testing.T) (chi.Router, cartsvc.Service) {
	t.Helper()

	cat, err := catalog.NewService()
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	cart := cartsvc.NewService()

	r := chi.NewRouter()
	r.Get("/", CartGet(cart, nil))
	r.Post("/items", CartAddItem(cart, cat, nil, nil))
	r.Post("/items/{productID}/remove", CartRemoveItem(cart, nil, nil))
	r.Delete("/items/{productID}", CartDeleteItem(cart, nil, nil))
	r.Delete("/", CartClear(cart, nil, nil))
	return r, cart
}

func decodeCartEnvelope(t *testing.T, resp *httptest.ResponseRecorder) cartResponse {
	t.Helper()

	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCartAddItemMergesLines(t *testing.T) {
	router, _ := newCartRouter(t)

	body := `{"product_id":"1"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", resp.Code)
		}
		if i == 1 {
			data := decodeCartEnvelope(t, resp)
			if len(data.Items) != 1 {
				t.Fatalf("expected one merged line, got %d", len(data.Items))
			}
			if data.Items[0].Quantity != 2 {
				t.Fatalf("expected quantity 2, got %d", data.Items[0].Quantity)
			}
			if data.Summary.TotalItems != 2 {
				t.Fatalf("expected 2 total items, got %d", data.Summary.TotalItems)
			}
		}
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	router, _ := newCartRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":"nope"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartAddItemRejectsUnknownFields(t *testing.T) {
	router, _ := newCartRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":"1","qty":5}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveItemDecrementsThenDeletes(t *testing.T) {
	router, cart := newCartRouter(t)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":"1"}`))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodPost, "/items/1/remove", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := cart.Quantity("1"); got != 1 {
		t.Fatalf("expected quantity 1 after remove, got %d", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/items/1/remove", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	data := decodeCartEnvelope(t, resp)
	if len(data.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(data.Items))
	}
}

func TestCartDeleteItemDropsWholeLine(t *testing.T) {
	router, cart := newCartRouter(t)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":"2"}`))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodDelete, "/items/2", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := cart.Quantity("2"); got != 0 {
		t.Fatalf("expected line gone, got quantity %d", got)
	}
}

func TestCartClearEmptiesEverything(t *testing.T) {
	router, cart := newCartRouter(t)

	for _, id := range []string{"1", "2", "3"} {
		body := `{"product_id":"` + id + `"}`
		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if items := cart.Items(); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
	if summary := cart.Summary(); !summary.TotalPrice.IsZero() {
		t.Fatalf("expected zero total, got %s", summary.TotalPrice)
	}
}

func TestCartServiceUnavailable(t *testing.T) {
	handler := CartGet(nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
