package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"medbot/internal/models"
	"medbot/pkg/logger"
	"medbot/pkg/metrics"
)

//go:generate mockgen -destination=../mocks/mock_fda_client.go -package=mocks medbot/internal/clients FDAClient
type FDAClient interface {
	LookupDrug(ctx context.Context, term string) ([]models.Drug, error)
	LookupRecalls(ctx context.Context, term string) ([]models.Recall, error)
	LookupRecentRecalls(ctx context.Context, limit int) ([]models.Recall, error)
}

type FDAConfig struct {
	BaseURL       string
	APIKey        string
	UserAgent     string
	Timeout       time.Duration
	DrugLimit     int
	RecallLimit   int
	RatePerSecond float64
	Burst         int
}

const (
	drugLabelPath   = "/drug/label.json"
	enforcementPath = "/drug/enforcement.json"

	defaultDrugLimit   = 10
	defaultRecallLimit = 20
	defaultTimeout     = 15 * time.Second
)

type fdaClient struct {
	baseURL     string
	apiKey      string
	userAgent   string
	drugLimit   int
	recallLimit int
	limiter     *rate.Limiter
	client      *http.Client
	log         *logger.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewFDAClient(config FDAConfig, log *logger.Logger, m *metrics.Metrics) FDAClient {
	if config.DrugLimit <= 0 {
		config.DrugLimit = defaultDrugLimit
	}
	if config.RecallLimit <= 0 {
		config.RecallLimit = defaultRecallLimit
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = "MedBot/1.0"
	}

	limit := rate.Inf
	if config.RatePerSecond > 0 {
		limit = rate.Limit(config.RatePerSecond)
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}

	return &fdaClient{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		apiKey:      config.APIKey,
		userAgent:   config.UserAgent,
		drugLimit:   config.DrugLimit,
		recallLimit: config.RecallLimit,
		limiter:     rate.NewLimiter(limit, config.Burst),
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		log:     log,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// LookupDrug searches labels whose brand or generic name matches term.
// A 404 from the API comes back as ErrNotFound.
func (c *fdaClient) LookupDrug(ctx context.Context, term string) ([]models.Drug, error) {
	q := quoteTerm(term)
	params := url.Values{}
	params.Set("search", fmt.Sprintf("(openfda.brand_name:%s OR openfda.generic_name:%s)", q, q))
	params.Set("limit", strconv.Itoa(c.drugLimit))

	results, err := c.get(ctx, "drug_label", drugLabelPath, params)
	if err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	drugs := make([]models.Drug, 0, len(results))
	for i, raw := range results {
		drug, err := parseDrug(raw)
		if err != nil {
			c.log.Debug("skipping drug label item", "index", i, "error", err.Error())
			continue
		}
		if drug.Nameless() {
			continue
		}
		drug.FetchedAt = fetchedAt
		drugs = append(drugs, drug)
	}

	return drugs, nil
}

// LookupRecalls searches enforcement reports by product description. No
// recall on file is the usual answer, so a 404 is an empty list.
func (c *fdaClient) LookupRecalls(ctx context.Context, term string) ([]models.Recall, error) {
	params := url.Values{}
	params.Set("search", "product_description:"+quoteTerm(term))
	params.Set("limit", strconv.Itoa(c.recallLimit))

	return c.recalls(ctx, "enforcement_search", params)
}

// LookupRecentRecalls returns the newest limit enforcement reports.
func (c *fdaClient) LookupRecentRecalls(ctx context.Context, limit int) ([]models.Recall, error) {
	if limit <= 0 {
		limit = defaultDrugLimit
	}

	params := url.Values{}
	params.Set("sort", "report_date:desc")
	params.Set("limit", strconv.Itoa(limit))

	return c.recalls(ctx, "enforcement_recent", params)
}

func (c *fdaClient) recalls(ctx context.Context, endpoint string, params url.Values) ([]models.Recall, error) {
	results, err := c.get(ctx, endpoint, enforcementPath, params)
	if errors.Is(err, ErrNotFound) {
		return []models.Recall{}, nil
	}
	if err != nil {
		return nil, err
	}

	recalls := make([]models.Recall, 0, len(results))
	for i, raw := range results {
		recall, err := parseRecall(raw)
		if err != nil {
			c.log.Debug("skipping enforcement item", "index", i, "error", err.Error())
			continue
		}
		recalls = append(recalls, recall)
	}
	return recalls, nil
}

type envelope struct {
	Results []json.RawMessage `json:"results"`
}

// get performs one GET and returns the raw "results" entries.
func (c *fdaClient) get(ctx context.Context, endpoint, path string, params url.Values) ([]json.RawMessage, error) {
	op := "fda " + endpoint

	if err := c.limiter.Wait(ctx); err != nil {
		c.observe(endpoint, "error", 0)
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.observe(endpoint, "error", time.Since(start))
		return nil, &UpstreamError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.observe(endpoint, "not_found", time.Since(start))
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.observe(endpoint, "error", time.Since(start))
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(body)))}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.observe(endpoint, "error", time.Since(start))
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode JSON: %w", err)}
	}

	c.observe(endpoint, "ok", time.Since(start))
	return env.Results, nil
}

func (c *fdaClient) observe(endpoint, outcome string, elapsed time.Duration) {
	c.metrics.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	if elapsed > 0 {
		c.metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	}
}

// quoteTerm wraps the term as an exact phrase for the openFDA query syntax.
func quoteTerm(term string) string {
	term = strings.TrimSpace(strings.ReplaceAll(term, `"`, ""))
	return `"` + term + `"`
}
