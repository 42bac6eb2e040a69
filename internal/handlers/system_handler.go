package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medbot/internal/service"
)

// StatsFunc reports backend-specific numbers, e.g. Redis INFO.
type StatsFunc func(ctx context.Context) (map[string]string, error)

// Scheduler reports whether the background workers are running.
type Scheduler interface {
	IsRunning() bool
}

type SystemHandler struct {
	admin      service.CacheAdminService
	accounting service.AccountingService
	redisStats StatsFunc
	workers    map[string]bool
	scheduler  Scheduler
}

func NewSystemHandler(
	admin service.CacheAdminService,
	accounting service.AccountingService,
	redisStats StatsFunc,
	workers map[string]bool,
	scheduler Scheduler,
) *SystemHandler {
	return &SystemHandler{
		admin:      admin,
		accounting: accounting,
		redisStats: redisStats,
		workers:    workers,
		scheduler:  scheduler,
	}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	cacheStats, err := h.admin.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	callers, err := h.accounting.TotalCallers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"cache":             cacheStats,
		"callers":           callers,
		"workers":           h.workers,
		"scheduler_running": h.scheduler != nil && h.scheduler.IsRunning(),
	}
	if h.redisStats != nil {
		if stats, err := h.redisStats(ctx); err == nil {
			resp["redis"] = stats
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Purge deletes cached drugs older than the older_than duration.
func (h *SystemHandler) Purge(c *gin.Context) {
	olderThan, err := time.ParseDuration(c.Query("older_than"))
	if err != nil || olderThan <= 0 {
		badRequest(c, "older_than must be a positive duration such as 48h")
		return
	}

	removed, err := h.admin.Purge(c.Request.Context(), olderThan)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"removed":    removed,
		"older_than": olderThan.String(),
	})
}
