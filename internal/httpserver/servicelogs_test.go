package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"clees-keys/internal/domain"
)

func TestServiceLogs_Create(t *testing.T) {
	router := newTestRouter(Deps{ServiceLogRepo: &stubServiceLogRepo{}})

	body := `{"message":"Rekeyed front door","service_type":"rekey","technician":"tech-001","job_id":"job-1a2b","duration_ms":35000}`
	rec := doRequest(router, http.MethodPost, "/api/service-logs", strings.NewReader(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.ServiceLog
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Technician != "tech-001" || got.DurationMS != 35000 {
		t.Fatalf("unexpected log %+v", got)
	}
}

func TestServiceLogs_Create_MissingDuration(t *testing.T) {
	router := newTestRouter(Deps{})

	body := `{"message":"m","service_type":"rekey","technician":"tech-001","job_id":"job-1"}`
	rec := doRequest(router, http.MethodPost, "/api/service-logs", strings.NewReader(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestServiceLogs_Create_NegativeDuration(t *testing.T) {
	router := newTestRouter(Deps{})

	body := `{"message":"m","service_type":"rekey","technician":"tech-001","job_id":"job-1","duration_ms":-1}`
	rec := doRequest(router, http.MethodPost, "/api/service-logs", strings.NewReader(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestServiceLogs_NoUpdateOrDelete(t *testing.T) {
	router := newTestRouter(Deps{})

	if rec := doRequest(router, http.MethodPatch, "/api/service-logs/1", strings.NewReader(`{}`)); rec.Code == http.StatusOK {
		t.Fatalf("expected PATCH to be unrouted, got 200")
	}
	if rec := doRequest(router, http.MethodDelete, "/api/service-logs/1", nil); rec.Code == http.StatusOK {
		t.Fatalf("expected DELETE to be unrouted, got 200")
	}
}

func TestServiceLogs_Search_PassesWindow(t *testing.T) {
	backend := &stubBackend{logs: []domain.ServiceLog{{ID: 1, Message: "Rekeyed front door"}}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/service-logs/search?q=rekey&since=2026-01-01&until=2026-02-01", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastTerm != "rekey" {
		t.Fatalf("expected term rekey, got %q", backend.lastTerm)
	}
	if backend.lastWindow.Since == nil || !backend.lastWindow.Since.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected since %+v", backend.lastWindow.Since)
	}
	if backend.lastWindow.Until == nil || !backend.lastWindow.Until.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected until %+v", backend.lastWindow.Until)
	}
}

func TestServiceLogs_Search_BadTimestamp(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/service-logs/search?q=rekey&since=yesterday", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestServiceLogs_Fuzzy(t *testing.T) {
	backend := &stubBackend{logs: []domain.ServiceLog{{ID: 1, Message: "Rekeyed front door"}}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/service-logs/fuzzy?q=rekeey", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastTerm != "rekeey" {
		t.Fatalf("expected term rekeey, got %q", backend.lastTerm)
	}
}

func TestServiceLogs_Fuzzy_MissingQuery(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/service-logs/fuzzy", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
