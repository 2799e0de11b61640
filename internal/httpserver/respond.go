package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"clees-keys/internal/domain"
	"clees-keys/internal/search"
	"github.com/gin-gonic/gin"
)

const defaultListLimit = 50

// respondError maps gateway failures onto the response taxonomy: absent rows
// to 404, an unreachable search service to 502, everything else to a generic
// server error with the cause logged.
func respondError(c *gin.Context, logger *log.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, search.ErrUnavailable):
		logger.Printf("http: search backend unavailable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable"})
	default:
		logger.Printf("http: %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func requireQuery(c *gin.Context, name string) (string, bool) {
	v := c.Query(name)
	if v == "" {
		badRequest(c, "Query parameter '"+name+"' is required")
		return "", false
	}
	return v, true
}

func parsePaging(c *gin.Context) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 0 {
		badRequest(c, "invalid limit")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, "invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

// parseTimeParam accepts RFC 3339 timestamps or bare dates. Returns nil when
// the parameter is absent.
func parseTimeParam(c *gin.Context, name string) (*time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, true
		}
	}
	badRequest(c, "invalid '"+name+"' timestamp")
	return nil, false
}
