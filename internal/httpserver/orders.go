package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/domain"
	"clees-keys/internal/repository/order"
	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

type orderHandlers struct {
	repo    order.Repository
	backend search.Backend
	logger  *log.Logger
}

func (h orderHandlers) list(c *gin.Context) {
	limit, offset, ok := parsePaging(c)
	if !ok {
		return
	}
	orders, err := h.repo.List(c.Request.Context(), order.ListFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, h.logger, err, "Order not found")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h orderHandlers) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	o, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

type createOrderRequest struct {
	Description string   `json:"description"`
	KeyType     string   `json:"key_type"`
	Price       *float64 `json:"price"`
	CustomerID  string   `json:"customer_id"`
	Store       string   `json:"store"`
}

func (h orderHandlers) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Description == "" || req.KeyType == "" || req.Price == nil || req.CustomerID == "" || req.Store == "" {
		badRequest(c, "description, key_type, price, customer_id and store are required")
		return
	}
	if *req.Price < 0 {
		badRequest(c, "price must be non-negative")
		return
	}

	o, err := h.repo.Create(c.Request.Context(), order.CreateInput{
		Description: req.Description,
		KeyType:     req.KeyType,
		Price:       *req.Price,
		CustomerID:  req.CustomerID,
		Store:       req.Store,
	})
	if err != nil {
		respondError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h orderHandlers) updateStatus(c *gin.Context) {
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
	if !domain.ValidOrderStatus(req.Status) {
		badRequest(c, "invalid status")
		return
	}

	o, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h orderHandlers) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "Order not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h orderHandlers) autocomplete(c *gin.Context) {
	prefix, ok := requireQuery(c, "prefix")
	if !ok {
		return
	}
	suggestions, err := h.backend.AutocompleteOrders(c.Request.Context(), prefix)
	if err != nil {
		respondError(c, h.logger, err, "Order not found")
		return
	}
	if suggestions == nil {
		suggestions = []search.OrderSuggestion{}
	}
	c.JSON(http.StatusOK, suggestions)
}
