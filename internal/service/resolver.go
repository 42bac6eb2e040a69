package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medbot/internal/cache"
	"medbot/internal/clients"
	"medbot/internal/models"
	"medbot/internal/repository"
	"medbot/internal/utils"
	"medbot/pkg/logger"
	"medbot/pkg/metrics"
)

var (
	// ErrUpstreamUnavailable wraps every upstream failure the resolver returns.
	ErrUpstreamUnavailable = errors.New("drug-safety service unavailable")
	ErrEmptyTerm           = errors.New("search term is empty")
)

// RecentRecallsTerm selects the newest recalls instead of a product search.
const RecentRecallsTerm = "all"

type Resolver interface {
	ResolveDrug(ctx context.Context, term string) ([]models.Drug, error)
	ResolveRecalls(ctx context.Context, term string) ([]models.Recall, error)
}

type ResolverConfig struct {
	RecentRecalls int
	HotTTL        time.Duration
}

type resolver struct {
	store         repository.DrugRepository
	hot           cache.CacheRepository
	client        clients.FDAClient
	recentRecalls int
	hotTTL        time.Duration
	log           *logger.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
}

// NewResolver wires the cache-or-fetch path. hot may be nil to skip the hot
// layer entirely.
func NewResolver(
	store repository.DrugRepository,
	hot cache.CacheRepository,
	client clients.FDAClient,
	config ResolverConfig,
	log *logger.Logger,
	m *metrics.Metrics,
) Resolver {
	if config.RecentRecalls <= 0 {
		config.RecentRecalls = 10
	}
	return &resolver{
		store:         store,
		hot:           hot,
		client:        client,
		recentRecalls: config.RecentRecalls,
		hotTTL:        config.HotTTL,
		log:           log.With("component", "resolver"),
		metrics:       m,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ResolveDrug answers from the cache while the matching record is fresh and
// goes upstream otherwise. A cache hit is always a single record; an upstream
// answer is returned whole, with only its first record persisted. No match
// upstream is an empty list and a nil error.
func (r *resolver) ResolveDrug(ctx context.Context, term string) ([]models.Drug, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	if drug, ok := r.hotLookup(ctx, term); ok {
		return []models.Drug{*drug}, nil
	}

	if drug, ok := r.storeLookup(ctx, term); ok {
		r.hotStore(ctx, term, drug)
		return []models.Drug{*drug}, nil
	}

	drugs, err := r.client.LookupDrug(ctx, term)
	switch {
	case errors.Is(err, clients.ErrNotFound):
		r.log.Info("no upstream match", "term", term)
		return []models.Drug{}, nil
	case err != nil:
		r.log.Error(err, "upstream drug lookup failed", "term", term)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	case len(drugs) == 0:
		return []models.Drug{}, nil
	}

	first := &drugs[0]
	if first.FetchedAt.IsZero() {
		first.FetchedAt = r.now()
	}
	if first.ID == "" {
		first.ID = utils.DrugID(first.PrimaryName(), first.FetchedAt)
	}

	if err := r.store.Put(ctx, first); err != nil {
		r.metrics.StoreErrors.WithLabelValues("put").Inc()
		r.log.Warn(err, "failed to cache drug record", "term", term, "id", first.ID)
	} else {
		// A new record can outrank what other terms resolved to.
		r.dropHot(ctx)
		r.hotStore(ctx, term, first)
	}

	return drugs, nil
}

// ResolveRecalls never reads or writes the cache.
func (r *resolver) ResolveRecalls(ctx context.Context, term string) ([]models.Recall, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	var (
		recalls []models.Recall
		err     error
	)
	if strings.EqualFold(term, RecentRecallsTerm) {
		recalls, err = r.client.LookupRecentRecalls(ctx, r.recentRecalls)
	} else {
		recalls, err = r.client.LookupRecalls(ctx, term)
	}
	if err != nil {
		r.log.Error(err, "upstream recall lookup failed", "term", term)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if recalls == nil {
		recalls = []models.Recall{}
	}
	return recalls, nil
}

func (r *resolver) storeLookup(ctx context.Context, term string) (*models.Drug, bool) {
	drug, err := r.store.FindByNameFragment(ctx, term)
	if err != nil {
		r.metrics.StoreErrors.WithLabelValues("find").Inc()
		r.metrics.CacheLookups.WithLabelValues("store", "error").Inc()
		r.log.Warn(err, "cache lookup failed, falling back to upstream", "term", term)
		return nil, false
	}
	if drug == nil {
		r.metrics.CacheLookups.WithLabelValues("store", "miss").Inc()
		r.log.Info("cache miss", "term", term)
		return nil, false
	}

	r.metrics.CacheLookups.WithLabelValues("store", "hit").Inc()
	r.log.Info("cache hit", "term", term, "id", drug.ID)
	return drug, true
}

func (r *resolver) hotLookup(ctx context.Context, term string) (*models.Drug, bool) {
	if r.hot == nil {
		return nil, false
	}

	var drug models.Drug
	err := r.hot.GetJSON(ctx, cache.DrugKey(term), &drug)
	switch {
	case errors.Is(err, cache.ErrMiss):
		r.metrics.CacheLookups.WithLabelValues("hot", "miss").Inc()
		return nil, false
	case err != nil:
		r.metrics.CacheLookups.WithLabelValues("hot", "error").Inc()
		r.log.Warn(err, "hot cache lookup failed", "term", term, "backend", r.hot.Backend())
		return nil, false
	}

	if drug.ID == "" || !drug.FreshAt(r.now(), r.store.TTL()) {
		r.metrics.CacheLookups.WithLabelValues("hot", "stale").Inc()
		return nil, false
	}

	r.metrics.CacheLookups.WithLabelValues("hot", "hit").Inc()
	r.log.Debug("hot cache hit", "term", term, "id", drug.ID)
	return &drug, true
}

func (r *resolver) dropHot(ctx context.Context) {
	if r.hot == nil {
		return
	}
	if _, err := r.hot.DeletePrefix(ctx, cache.DrugPrefix()); err != nil {
		r.log.Warn(err, "failed to drop hot cache entries", "backend", r.hot.Backend())
	}
}

// hotStore keeps the entry no longer than the record stays fresh.
func (r *resolver) hotStore(ctx context.Context, term string, drug *models.Drug) {
	if r.hot == nil || r.hotTTL <= 0 {
		return
	}

	expiration := r.hotTTL
	if left := r.store.TTL() - r.now().Sub(drug.FetchedAt); left < expiration {
		expiration = left
	}
	if expiration <= 0 {
		return
	}

	if err := r.hot.SetJSON(ctx, cache.DrugKey(term), drug, expiration); err != nil {
		r.log.Warn(err, "failed to set hot cache entry", "term", term, "backend", r.hot.Backend())
	}
}
