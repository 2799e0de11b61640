package httpserver

import (
	"log"
	"net/http"

	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

type dashboardHandlers struct {
	backend search.Backend
	logger  *log.Logger
}

func (h dashboardHandlers) revenue(c *gin.Context) {
	buckets, err := h.backend.RevenueBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "not found")
		return
	}
	if buckets == nil {
		buckets = []search.RevenueBucket{}
	}
	c.JSON(http.StatusOK, buckets)
}

func (h dashboardHandlers) serviceBreakdown(c *gin.Context) {
	buckets, err := h.backend.ServiceBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "not found")
		return
	}
	if buckets == nil {
		buckets = []search.ServiceBucket{}
	}
	c.JSON(http.StatusOK, buckets)
}

func (h dashboardHandlers) inventoryFacets(c *gin.Context) {
	facets, err := h.backend.InventoryFacets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "not found")
		return
	}
	if facets == nil {
		facets = []search.InventoryFacet{}
	}
	c.JSON(http.StatusOK, facets)
}
