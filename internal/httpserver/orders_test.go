package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"clees-keys/internal/domain"
	"clees-keys/internal/search"
)

func TestOrders_List(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: 1, Description: "Cut house key", KeyType: "house", Price: 4.5, Status: "pending"},
		{ID: 2, Description: "Program car fob", KeyType: "car", Price: 89.99, Status: "ready"},
	}}
	router := newTestRouter(Deps{OrderRepo: repo})

	rec := doRequest(router, http.MethodGet, "/api/orders", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].KeyType != "car" {
		t.Fatalf("unexpected orders %+v", got)
	}
}

func TestOrders_List_EmptyIsArray(t *testing.T) {
	router := newTestRouter(Deps{OrderRepo: &stubOrderRepo{}})

	rec := doRequest(router, http.MethodGet, "/api/orders", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestOrders_List_InvalidLimit(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/orders?limit=abc", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestOrders_Get_NotFound(t *testing.T) {
	router := newTestRouter(Deps{OrderRepo: &stubOrderRepo{err: domain.ErrNotFound}})

	rec := doRequest(router, http.MethodGet, "/api/orders/999", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Order not found") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestOrders_Get_InvalidID(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/orders/abc", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestOrders_Create(t *testing.T) {
	router := newTestRouter(Deps{OrderRepo: &stubOrderRepo{}})

	body := `{"description":"Cut house key","key_type":"house","price":4.5,"customer_id":"cust-1","store":"downtown"}`
	rec := doRequest(router, http.MethodPost, "/api/orders", strings.NewReader(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Status != "pending" || got.Price != 4.5 || got.CustomerID != "cust-1" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestOrders_Create_MissingFields(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPost, "/api/orders", strings.NewReader(`{"description":"no price"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestOrders_Create_NegativePrice(t *testing.T) {
	router := newTestRouter(Deps{})

	body := `{"description":"d","key_type":"house","price":-1,"customer_id":"cust-1","store":"downtown"}`
	rec := doRequest(router, http.MethodPost, "/api/orders", strings.NewReader(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestOrders_UpdateStatus(t *testing.T) {
	router := newTestRouter(Deps{OrderRepo: &stubOrderRepo{}})

	rec := doRequest(router, http.MethodPatch, "/api/orders/1", strings.NewReader(`{"status":"ready"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Status != "ready" {
		t.Fatalf("expected status ready, got %q", got.Status)
	}
}

func TestOrders_UpdateStatus_InvalidStatus(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPatch, "/api/orders/1", strings.NewReader(`{"status":"shipped"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestOrders_Delete(t *testing.T) {
	router := newTestRouter(Deps{OrderRepo: &stubOrderRepo{}})

	rec := doRequest(router, http.MethodDelete, "/api/orders/1", nil)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestOrders_Delete_NotFound(t *testing.T) {
	router := newTestRouter(Deps{OrderRepo: &stubOrderRepo{err: domain.ErrNotFound}})

	rec := doRequest(router, http.MethodDelete, "/api/orders/1", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestOrders_Autocomplete(t *testing.T) {
	backend := &stubBackend{suggestions: []search.OrderSuggestion{
		{ID: 1, Description: "Cut house key", KeyType: "house"},
	}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/orders/autocomplete?prefix=cut", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastPrefix != "cut" {
		t.Fatalf("expected prefix cut, got %q", backend.lastPrefix)
	}
	var got []search.OrderSuggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Cut house key" {
		t.Fatalf("unexpected suggestions %+v", got)
	}
}

func TestOrders_Autocomplete_MissingPrefix(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/orders/autocomplete", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Query parameter 'prefix' is required") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestOrders_Autocomplete_BackendDown(t *testing.T) {
	backend := &stubBackend{failWith: search.ErrUnavailable}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/orders/autocomplete?prefix=cut", nil)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}
