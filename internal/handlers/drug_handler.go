package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"medbot/internal/models"
	"medbot/internal/service"
)

type DrugHandler struct {
	resolver   service.Resolver
	accounting service.AccountingService
	export     service.DrugExportService
	admin      service.CacheAdminService
}

func NewDrugHandler(
	resolver service.Resolver,
	accounting service.AccountingService,
	export service.DrugExportService,
	admin service.CacheAdminService,
) *DrugHandler {
	return &DrugHandler{
		resolver:   resolver,
		accounting: accounting,
		export:     export,
		admin:      admin,
	}
}

// Search resolves a drug term, recording the search alongside when a
// caller id is given.
func (h *DrugHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		badRequest(c, "query parameter q is required")
		return
	}
	callerID, hasCaller, err := parseCallerID(c.Query("caller_id"))
	if err != nil {
		badRequest(c, "caller_id must be an integer")
		return
	}

	var (
		g     errgroup.Group
		drugs []models.Drug
	)
	if hasCaller {
		g.Go(func() error {
			h.accounting.RecordSearch(ctx, callerID, term)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		drugs, err = h.resolver.ResolveDrug(ctx, term)
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   term,
		"count":   len(drugs),
		"results": drugs,
	})
}

// Cached reads the store without going upstream.
func (h *DrugHandler) Cached(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		badRequest(c, "query parameter q is required")
		return
	}

	includeStale := false
	if raw := c.Query("include_stale"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "include_stale must be a boolean")
			return
		}
		includeStale = v
	}

	drug, err := h.admin.Lookup(c.Request.Context(), term, includeStale)
	if err != nil {
		respondError(c, err)
		return
	}

	results := []models.Drug{}
	if drug != nil {
		results = append(results, *drug)
	}
	c.JSON(http.StatusOK, gin.H{
		"query":         term,
		"include_stale": includeStale,
		"count":         len(results),
		"results":       results,
	})
}

// Get returns one stored record by id, stale or not.
func (h *DrugHandler) Get(c *gin.Context) {
	drug, err := h.admin.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if drug == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not found",
			"message": "no cached drug with that id",
		})
		return
	}
	c.JSON(http.StatusOK, drug)
}

func (h *DrugHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var buf bytes.Buffer
	if _, err := h.export.Export(c.Request.Context(), &buf, format); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("drugs_cache_%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
