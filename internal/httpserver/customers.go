package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/domain"
	"clees-keys/internal/repository/customer"
	"clees-keys/internal/repository/order"
	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

const recentOrderCount = 5

type customerHandlers struct {
	repo    customer.Repository
	orders  order.Repository
	backend search.Backend
	logger  *log.Logger
}

func (h customerHandlers) list(c *gin.Context) {
	limit, offset, ok := parsePaging(c)
	if !ok {
		return
	}
	customers, err := h.repo.List(c.Request.Context(), customer.ListFilter{Limit: limit, Offset: offset})
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

type customerDetail struct {
	domain.Customer
	RecentOrders []domain.Order `json:"recent_orders"`
}

func (h customerHandlers) get(c *gin.Context) {
	id := c.Param("id")
	cust, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	recent, err := h.orders.ListRecentByCustomer(c.Request.Context(), cust.ID, recentOrderCount)
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	if recent == nil {
		recent = []domain.Order{}
	}
	c.JSON(http.StatusOK, customerDetail{Customer: *cust, RecentOrders: recent})
}

type createCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h customerHandlers) create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
		badRequest(c, "name, email, phone and address are required")
		return
	}

	cust, err := h.repo.Create(c.Request.Context(), customer.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h customerHandlers) search(c *gin.Context) {
	q, ok := requireQuery(c, "q")
	if !ok {
		return
	}
	customers, err := h.backend.SearchCustomers(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h customerHandlers) lookup(c *gin.Context) {
	phone, ok := requireQuery(c, "phone")
	if !ok {
		return
	}
	customers, err := h.backend.LookupCustomersByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h customerHandlers) nearby(c *gin.Context) {
	address, ok := requireQuery(c, "address")
	if !ok {
		return
	}
	customers, err := h.backend.NearbyCustomers(c.Request.Context(), address)
	if err != nil {
		respondError(c, h.logger, err, "Customer not found")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}
