package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/domain"
	"clees-keys/internal/repository/servicelog"
	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

type serviceLogHandlers struct {
	repo    servicelog.Repository
	backend search.Backend
	logger  *log.Logger
}

func (h serviceLogHandlers) list(c *gin.Context) {
	limit, offset, ok := parsePaging(c)
	if !ok {
		return
	}
	logs, err := h.repo.List(c.Request.Context(), servicelog.ListFilter{
		Technician: c.Query("technician"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, h.logger, err, "Service log not found")
		return
	}
	if logs == nil {
		logs = []domain.ServiceLog{}
	}
	c.JSON(http.StatusOK, logs)
}

func (h serviceLogHandlers) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	l, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Service log not found")
		return
	}
	c.JSON(http.StatusOK, l)
}

type createLogRequest struct {
	Message     string   `json:"message"`
	ServiceType string   `json:"service_type"`
	Technician  string   `json:"technician"`
	JobID       string   `json:"job_id"`
	DurationMS  *float64 `json:"duration_ms"`
}

func (h serviceLogHandlers) create(c *gin.Context) {
	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Message == "" || req.ServiceType == "" || req.Technician == "" || req.JobID == "" || req.DurationMS == nil {
		badRequest(c, "message, service_type, technician, job_id and duration_ms are required")
		return
	}
	if *req.DurationMS < 0 {
		badRequest(c, "duration_ms must be non-negative")
		return
	}

	l, err := h.repo.Create(c.Request.Context(), servicelog.CreateInput{
		Message:     req.Message,
		ServiceType: req.ServiceType,
		Technician:  req.Technician,
		JobID:       req.JobID,
		DurationMS:  *req.DurationMS,
	})
	if err != nil {
		respondError(c, h.logger, err, "Service log not found")
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h serviceLogHandlers) search(c *gin.Context) {
	q, ok := requireQuery(c, "q")
	if !ok {
		return
	}
	since, ok := parseTimeParam(c, "since")
	if !ok {
		return
	}
	until, ok := parseTimeParam(c, "until")
	if !ok {
		return
	}

	logs, err := h.backend.SearchServiceLogs(c.Request.Context(), q, search.LogWindow{Since: since, Until: until})
	if err != nil {
		respondError(c, h.logger, err, "Service log not found")
		return
	}
	if logs == nil {
		logs = []domain.ServiceLog{}
	}
	c.JSON(http.StatusOK, logs)
}

func (h serviceLogHandlers) fuzzy(c *gin.Context) {
	q, ok := requireQuery(c, "q")
	if !ok {
		return
	}
	logs, err := h.backend.FuzzyServiceLogs(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err, "Service log not found")
		return
	}
	if logs == nil {
		logs = []domain.ServiceLog{}
	}
	c.JSON(http.StatusOK, logs)
}
