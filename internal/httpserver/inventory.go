package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/domain"
	"clees-keys/internal/repository/inventory"
	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

type inventoryHandlers struct {
	repo    inventory.Repository
	backend search.Backend
	logger  *log.Logger
}

func (h inventoryHandlers) list(c *gin.Context) {
	limit, offset, ok := parsePaging(c)
	if !ok {
		return
	}
	items, err := h.repo.List(c.Request.Context(), inventory.ListFilter{
		Location: c.Query("location"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, h.logger, err, "Item not found")
		return
	}
	if items == nil {
		items = []domain.KeyInventoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h inventoryHandlers) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	it, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, it)
}

type createItemRequest struct {
	SKU         string   `json:"sku"`
	Brand       string   `json:"brand"`
	KeyType     string   `json:"key_type"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Location    string   `json:"location"`
}

func (h inventoryHandlers) create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.SKU == "" || req.Brand == "" || req.KeyType == "" || req.Description == "" ||
		req.Quantity == nil || req.Price == nil || req.Location == "" {
		badRequest(c, "sku, brand, key_type, description, quantity, price and location are required")
		return
	}
	if *req.Quantity < 0 || *req.Price < 0 {
		badRequest(c, "quantity and price must be non-negative")
		return
	}

	it, err := h.repo.Create(c.Request.Context(), inventory.CreateInput{
		SKU:         req.SKU,
		Brand:       req.Brand,
		KeyType:     req.KeyType,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Location:    req.Location,
	})
	if err != nil {
		respondError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h inventoryHandlers) updateQuantity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Quantity == nil {
		badRequest(c, "quantity is required")
		return
	}
	if *req.Quantity < 0 {
		badRequest(c, "quantity must be non-negative")
		return
	}

	it, err := h.repo.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		respondError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h inventoryHandlers) search(c *gin.Context) {
	q, ok := requireQuery(c, "q")
	if !ok {
		return
	}
	items, err := h.backend.SearchInventory(c.Request.Context(), q, search.InventoryFilters{
		KeyType: c.Query("key_type"),
		Brand:   c.Query("brand"),
	})
	if err != nil {
		respondError(c, h.logger, err, "Item not found")
		return
	}
	if items == nil {
		items = []domain.KeyInventoryItem{}
	}
	c.JSON(http.StatusOK, items)
}
