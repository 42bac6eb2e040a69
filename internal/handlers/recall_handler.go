package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medbot/internal/service"
)

type RecallHandler struct {
	resolver service.Resolver
}

func NewRecallHandler(resolver service.Resolver) *RecallHandler {
	return &RecallHandler{resolver: resolver}
}

// Search accepts a product term or "all" for the newest recalls. Recall
// searches are not counted against the caller.
func (h *RecallHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		badRequest(c, "query parameter q is required")
		return
	}

	recalls, err := h.resolver.ResolveRecalls(c.Request.Context(), term)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   term,
		"count":   len(recalls),
		"results": recalls,
	})
}
