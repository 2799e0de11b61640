package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"clees-keys/internal/search"
)

func TestDashboard_Revenue(t *testing.T) {
	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	backend := &stubBackend{revenue: []search.RevenueBucket{
		{Week: week, Store: "downtown", KeyType: "car", OrderCount: 12, Revenue: 1079.88, AvgOrderValue: 89.99},
	}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/dashboard/revenue", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got []search.RevenueBucket
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].Store != "downtown" || got[0].Revenue != 1079.88 {
		t.Fatalf("unexpected buckets %+v", got)
	}
}

func TestDashboard_ServiceBreakdown_EmptyIsArray(t *testing.T) {
	router := newTestRouter(Deps{Search: &stubBackend{}})

	rec := doRequest(router, http.MethodGet, "/api/dashboard/service-breakdown", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestDashboard_InventoryFacets(t *testing.T) {
	backend := &stubBackend{facets: []search.InventoryFacet{
		{Brand: "Schlage", KeyType: "house", Items: 4, TotalQuantity: 160, AvgPrice: 2.75},
	}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/dashboard/inventory-facets", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got []search.InventoryFacet
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].TotalQuantity != 160 {
		t.Fatalf("unexpected facets %+v", got)
	}
}

func TestDashboard_BackendDown(t *testing.T) {
	backend := &stubBackend{failWith: search.ErrUnavailable}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/dashboard/revenue", nil)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
}
