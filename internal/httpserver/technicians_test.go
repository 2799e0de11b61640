package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"clees-keys/internal/search"
)

func TestTechnicians_Search(t *testing.T) {
	backend := &stubBackend{hits: []search.TechnicianHit{{Technician: "tech-001", Jobs: 42}}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/technicians/search?q=tech", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got []search.TechnicianHit
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].Jobs != 42 {
		t.Fatalf("unexpected hits %+v", got)
	}
}

func TestTechnicians_Search_MissingQuery(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/technicians/search", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestTechnicians_Performance_PassesSince(t *testing.T) {
	backend := &stubBackend{}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/technicians/performance?since=2026-06-01", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastSince == nil || !backend.lastSince.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected since %+v", backend.lastSince)
	}
}

func TestTechnicians_Performance_NoSince(t *testing.T) {
	backend := &stubBackend{}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/technicians/performance", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastSince != nil {
		t.Fatalf("expected nil since, got %v", backend.lastSince)
	}
}

func TestTechnicians_Performance_BadSince(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodGet, "/api/technicians/performance?since=last-week", nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestTechnicians_Leaderboard(t *testing.T) {
	backend := &stubBackend{leaderboard: []search.LeaderboardEntry{
		{Technician: "tech-003", JobsCompleted: 17},
		{Technician: "tech-001", JobsCompleted: 12},
	}}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/technicians/leaderboard", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got []search.LeaderboardEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 || got[0].Technician != "tech-003" {
		t.Fatalf("unexpected leaderboard %+v", got)
	}
}

func TestTechnicians_Utilization_PassesTechnician(t *testing.T) {
	backend := &stubBackend{}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/technicians/utilization?technician=tech-002", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if backend.lastTechName != "tech-002" {
		t.Fatalf("expected technician tech-002, got %q", backend.lastTechName)
	}
}

func TestTechnicians_InternalError(t *testing.T) {
	backend := &stubBackend{failWith: errors.New("boom")}
	router := newTestRouter(Deps{Search: backend})

	rec := doRequest(router, http.MethodGet, "/api/technicians/leaderboard", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
