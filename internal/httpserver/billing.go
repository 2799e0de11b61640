package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/domain"
	"clees-keys/internal/repository/billing"
	"github.com/gin-gonic/gin"
)

type billingHandlers struct {
	repo   billing.Repository
	logger *log.Logger
}

func (h billingHandlers) list(c *gin.Context) {
	limit, offset, ok := parsePaging(c)
	if !ok {
		return
	}
	records, err := h.repo.List(c.Request.Context(), billing.ListFilter{
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, h.logger, err, "Invoice not found")
		return
	}
	if records == nil {
		records = []domain.CustomerBillingRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (h billingHandlers) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, b)
}

type createInvoiceRequest struct {
	CustomerID    string   `json:"customer_id"`
	Description   string   `json:"description"`
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"payment_method"`
}

func (h billingHandlers) create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.CustomerID == "" || req.Description == "" || req.Amount == nil {
		badRequest(c, "customer_id, description and amount are required")
		return
	}
	if *req.Amount < 0 {
		badRequest(c, "amount must be non-negative")
		return
	}
	if req.PaymentMethod != nil && !domain.ValidPaymentMethod(*req.PaymentMethod) {
		badRequest(c, "invalid payment_method")
		return
	}

	b, err := h.repo.Create(c.Request.Context(), billing.CreateInput{
		CustomerID:    req.CustomerID,
		Description:   req.Description,
		Amount:        *req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, h.logger, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusCreated, b)
}

type updateInvoiceRequest struct {
	Status        *string `json:"status"`
	PaymentMethod *string `json:"payment_method"`
}

func (h billingHandlers) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Status == nil && req.PaymentMethod == nil {
		badRequest(c, "No fields to update")
		return
	}
	if req.Status != nil && !domain.ValidBillingStatus(*req.Status) {
		badRequest(c, "invalid status")
		return
	}
	if req.PaymentMethod != nil && !domain.ValidPaymentMethod(*req.PaymentMethod) {
		badRequest(c, "invalid payment_method")
		return
	}

	b, err := h.repo.Update(c.Request.Context(), id, billing.UpdateInput{
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, h.logger, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, b)
}
