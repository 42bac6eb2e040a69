package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medbot/internal/models"
	"medbot/internal/service"
	"medbot/pkg/logger"
)

type CallerHandler struct {
	accounting service.AccountingService
	log        *logger.Logger
}

func NewCallerHandler(accounting service.AccountingService, log *logger.Logger) *CallerHandler {
	return &CallerHandler{accounting: accounting, log: log}
}

type registerCallerRequest struct {
	CallerID int64  `json:"caller_id" binding:"required"`
	Username string `json:"username"`
}

func (h *CallerHandler) Register(c *gin.Context) {
	var req registerCallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.accounting.RegisterCaller(c.Request.Context(), req.CallerID, req.Username); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"caller_id": req.CallerID,
	})
}

func (h *CallerHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	callerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "caller id must be an integer")
		return
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	recent, err := h.accounting.RecentSearches(ctx, callerID, limit)
	if err != nil {
		h.log.Warn(err, "failed to load recent searches", "caller_id", callerID)
		recent = []models.Search{}
	}

	c.JSON(http.StatusOK, gin.H{
		"caller_id":       callerID,
		"search_count":    h.accounting.GetSearchCount(ctx, callerID),
		"recent_searches": recent,
	})
}
