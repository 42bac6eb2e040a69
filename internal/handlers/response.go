package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"medbot/internal/service"
)

// respondError maps service errors onto status codes. Upstream trouble is a
// 503 so clients can tell it apart from an empty result.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyTerm):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "service unavailable",
			"message": "the drug-safety service is unavailable, try again later",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal error",
			"message": err.Error(),
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request",
		"message": message,
	})
}

// parseCallerID reads an optional caller id; ok is false when absent.
func parseCallerID(raw string) (id int64, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
