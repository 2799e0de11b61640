package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

// Technicians have no table of their own; every endpoint aggregates over the
// service-log history.
type technicianHandlers struct {
	backend search.Backend
	logger  *log.Logger
}

func (h technicianHandlers) search(c *gin.Context) {
	q, ok := requireQuery(c, "q")
	if !ok {
		return
	}
	hits, err := h.backend.SearchTechnicians(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err, "Technician not found")
		return
	}
	if hits == nil {
		hits = []search.TechnicianHit{}
	}
	c.JSON(http.StatusOK, hits)
}

func (h technicianHandlers) performance(c *gin.Context) {
	since, ok := parseTimeParam(c, "since")
	if !ok {
		return
	}
	rows, err := h.backend.TechnicianPerformance(c.Request.Context(), since)
	if err != nil {
		respondError(c, h.logger, err, "Technician not found")
		return
	}
	if rows == nil {
		rows = []search.PerformanceRow{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h technicianHandlers) leaderboard(c *gin.Context) {
	entries, err := h.backend.TechnicianLeaderboard(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Technician not found")
		return
	}
	if entries == nil {
		entries = []search.LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h technicianHandlers) utilization(c *gin.Context) {
	since, ok := parseTimeParam(c, "since")
	if !ok {
		return
	}
	rows, err := h.backend.TechnicianUtilization(c.Request.Context(), since, c.Query("technician"))
	if err != nil {
		respondError(c, h.logger, err, "Technician not found")
		return
	}
	if rows == nil {
		rows = []search.UtilizationRow{}
	}
	c.JSON(http.StatusOK, rows)
}
