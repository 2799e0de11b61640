package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"clees-keys/internal/domain"
)

func TestAppointments_Create(t *testing.T) {
	router := newTestRouter(Deps{AppointmentRepo: &stubAppointmentRepo{}})

	body := `{"appointment_date":"2026-09-02T10:00:00Z","customer_id":"cust-1","service_type":"lockout","technician":"tech-002","address":"12 Main St"}`
	rec := doRequest(router, http.MethodPost, "/api/appointments", strings.NewReader(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Status != "scheduled" {
		t.Fatalf("expected default status scheduled, got %q", got.Status)
	}
	if got.Notes != nil {
		t.Fatalf("expected nil notes, got %v", *got.Notes)
	}
}

func TestAppointments_Create_MissingFields(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPost, "/api/appointments", strings.NewReader(`{"customer_id":"cust-1"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAppointments_UpdateStatus(t *testing.T) {
	router := newTestRouter(Deps{AppointmentRepo: &stubAppointmentRepo{}})

	rec := doRequest(router, http.MethodPatch, "/api/appointments/1", strings.NewReader(`{"status":"confirmed"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Status != "confirmed" {
		t.Fatalf("expected status confirmed, got %q", got.Status)
	}
}

func TestAppointments_UpdateStatus_InvalidStatus(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPatch, "/api/appointments/1", strings.NewReader(`{"status":"done"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAppointments_Delete_NotFound(t *testing.T) {
	router := newTestRouter(Deps{AppointmentRepo: &stubAppointmentRepo{err: domain.ErrNotFound}})

	rec := doRequest(router, http.MethodDelete, "/api/appointments/7", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
