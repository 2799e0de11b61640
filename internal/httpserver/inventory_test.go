package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"clees-keys/internal/domain"
)

func TestInventory_Create(t *testing.T) {
	router := newTestRouter(Deps{InventoryRepo: &stubInventoryRepo{}})

	body := `{"sku":"SC1-001","brand":"Schlage","key_type":"house","description":"SC1 blank","quantity":40,"price":2.5,"location":"downtown"}`
	rec := doRequest(router, http.MethodPost, "/api/inventory", strings.NewReader(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.KeyInventoryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.SKU != "SC1-001" || got.Quantity != 40 {
		t.Fatalf("unexpected item %+v", got)
	}
}

func TestInventory_Create_ZeroQuantityAllowed(t *testing.T) {
	router := newTestRouter(Deps{InventoryRepo: &stubInventoryRepo{}})

	body := `{"sku":"SC1-001","brand":"Schlage","key_type":"house","description":"SC1 blank","quantity":0,"price":2.5,"location":"downtown"}`
	rec := doRequest(router, http.MethodPost, "/api/inventory", strings.NewReader(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInventory_Create_NegativeQuantity(t *testing.T) {
	router := newTestRouter(Deps{})

	body := `{"sku":"SC1-001","brand":"Schlage","key_type":"house","description":"SC1 blank","quantity":-1,"price":2.5,"location":"downtown"}`
	rec := doRequest(router, http.MethodPost, "/api/inventory", strings.NewReader(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestInventory_UpdateQuantity(t *testing.T) {
	router := newTestRouter(Deps{InventoryRepo: &stubInventoryRepo{}})

	rec := doRequest(router, http.MethodPatch, "/api/inventory/1", strings.NewReader(`{"quantity":12}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.KeyInventoryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Quantity != 12 {
		t.Fatalf("expected quantity 12, got %d", got.Quantity)
	}
}

func TestInventory_UpdateQuantity_Missing(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPatch, "/api/inventory/1", strings.NewReader(`{}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestInventory_Search_PassesFilters(t *testing.T) {
	backend := &stubBackend{items: []domain.KeyInventoryItem{{ID: 1, SKU: "SC1-001"}}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/inventory/search?q=blank&key_type=house&brand=Schlage", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastTerm != "blank" {
		t.Fatalf("expected term blank, got %q", backend.lastTerm)
	}
	if backend.lastFilters.KeyType != "house" || backend.lastFilters.Brand != "Schlage" {
		t.Fatalf("unexpected filters %+v", backend.lastFilters)
	}
}

func TestInventory_Search_MissingQuery(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/inventory/search", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
