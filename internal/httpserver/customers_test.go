package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"clees-keys/internal/domain"
)

func TestCustomers_Get_IncludesRecentOrders(t *testing.T) {
	cust := &domain.Customer{ID: "cust-abc", Name: "Ada", Email: "ada@example.com", Phone: "555-0100", Address: "12 Main St"}
	orders := []domain.Order{
		{ID: 3, CustomerID: "cust-abc", Description: "Cut house key"},
		{ID: 2, CustomerID: "cust-abc", Description: "Program car fob"},
	}
	router := newTestRouter(Deps{
		CustomerRepo: &stubCustomerRepo{customer: cust},
		OrderRepo:    &stubOrderRepo{orders: orders},
	})

	rec := doRequest(router, http.MethodGet, "/api/customers/cust-abc", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		ID           string         `json:"id"`
		RecentOrders []domain.Order `json:"recent_orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != "cust-abc" || len(got.RecentOrders) != 2 {
		t.Fatalf("unexpected detail %+v", got)
	}
}

func TestCustomers_Get_NotFound(t *testing.T) {
	router := newTestRouter(Deps{CustomerRepo: &stubCustomerRepo{err: domain.ErrNotFound}})

	rec := doRequest(router, http.MethodGet, "/api/customers/cust-missing", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestCustomers_Create(t *testing.T) {
	router := newTestRouter(Deps{CustomerRepo: &stubCustomerRepo{}})

	body := `{"name":"Ada","email":"ada@example.com","phone":"555-0100","address":"12 Main St"}`
	rec := doRequest(router, http.MethodPost, "/api/customers", strings.NewReader(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.HasPrefix(got.ID, "cust-") {
		t.Fatalf("expected cust- prefixed id, got %q", got.ID)
	}
}

func TestCustomers_Create_MissingFields(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPost, "/api/customers", strings.NewReader(`{"name":"Ada"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCustomers_Search(t *testing.T) {
	backend := &stubBackend{customers: []domain.Customer{{ID: "cust-abc", Name: "Ada"}}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/customers/search?q=ada", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastTerm != "ada" {
		t.Fatalf("expected term ada, got %q", backend.lastTerm)
	}
}

func TestCustomers_Search_MissingQuery(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/customers/search", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Query parameter 'q' is required") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestCustomers_Lookup_MissingPhone(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/customers/lookup", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Query parameter 'phone' is required") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestCustomers_Lookup(t *testing.T) {
	backend := &stubBackend{customers: []domain.Customer{{ID: "cust-abc", Phone: "555-0100"}}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/customers/lookup?phone=555", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastPrefix != "555" {
		t.Fatalf("expected phone prefix 555, got %q", backend.lastPrefix)
	}
}

func TestCustomers_Nearby_MissingAddress(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/customers/nearby", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCustomers_StaticRoutesBeforeID(t *testing.T) {
	// "search", "lookup" and "nearby" must not be captured by the :id param.
	router := newTestRouter(Deps{CustomerRepo: &stubCustomerRepo{err: domain.ErrNotFound}})

	rec := doRequest(router, http.MethodGet, "/api/customers/nearby?address=Main", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
