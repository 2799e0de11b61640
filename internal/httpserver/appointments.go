package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/domain"
	"clees-keys/internal/repository/appointment"
	"github.com/gin-gonic/gin"
)

type appointmentHandlers struct {
	repo   appointment.Repository
	logger *log.Logger
}

func (h appointmentHandlers) list(c *gin.Context) {
	limit, offset, ok := parsePaging(c)
	if !ok {
		return
	}
	appts, err := h.repo.List(c.Request.Context(), appointment.ListFilter{
		Technician: c.Query("technician"),
		Status:     c.Query("status"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, h.logger, err, "Appointment not found")
		return
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

func (h appointmentHandlers) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

type createAppointmentRequest struct {
	AppointmentDate string  `json:"appointment_date"`
	CustomerID      string  `json:"customer_id"`
	ServiceType     string  `json:"service_type"`
	Technician      string  `json:"technician"`
	Notes           *string `json:"notes"`
	Address         string  `json:"address"`
}

func (h appointmentHandlers) create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.AppointmentDate == "" || req.CustomerID == "" || req.ServiceType == "" ||
		req.Technician == "" || req.Address == "" {
		badRequest(c, "appointment_date, customer_id, service_type, technician and address are required")
		return
	}

	a, err := h.repo.Create(c.Request.Context(), appointment.CreateInput{
		AppointmentDate: req.AppointmentDate,
		CustomerID:      req.CustomerID,
		ServiceType:     req.ServiceType,
		Technician:      req.Technician,
		Notes:           req.Notes,
		Address:         req.Address,
	})
	if err != nil {
		respondError(c, h.logger, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h appointmentHandlers) updateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Status == "" {
		badRequest(c, "status is required")
		return
	}
	if !domain.ValidAppointmentStatus(req.Status) {
		badRequest(c, "invalid status")
		return
	}

	a, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h appointmentHandlers) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "Appointment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
