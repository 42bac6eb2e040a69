package service

import (
	"context"

	"medbot/internal/models"
	"medbot/internal/repository"
	"medbot/pkg/logger"
	"medbot/pkg/metrics"
)

// AccountingService records usage. None of its write failures reach the
// caller; they are logged and counted.
type AccountingService interface {
	RecordSearch(ctx context.Context, callerID int64, query string)
	GetSearchCount(ctx context.Context, callerID int64) int64
	RegisterCaller(ctx context.Context, callerID int64, username string) error
	RecentSearches(ctx context.Context, callerID int64, limit int) ([]models.Search, error)
	TotalCallers(ctx context.Context) (int64, error)
}

type accountingService struct {
	users   repository.UserRepository
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewAccountingService(users repository.UserRepository, log *logger.Logger, m *metrics.Metrics) AccountingService {
	return &accountingService{
		users:   users,
		log:     log.With("component", "accounting"),
		metrics: m,
	}
}

func (s *accountingService) RecordSearch(ctx context.Context, callerID int64, query string) {
	if err := s.users.RecordSearch(ctx, callerID, query); err != nil {
		s.metrics.SearchesRecorded.WithLabelValues("failed").Inc()
		s.metrics.StoreErrors.WithLabelValues("record_search").Inc()
		s.log.Warn(err, "failed to record search", "caller_id", callerID)
		return
	}
	s.metrics.SearchesRecorded.WithLabelValues("ok").Inc()
}

// GetSearchCount is 0 for unknown callers and when the store is unreachable.
func (s *accountingService) GetSearchCount(ctx context.Context, callerID int64) int64 {
	count, err := s.users.GetSearchCount(ctx, callerID)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("search_count").Inc()
		s.log.Warn(err, "failed to read search count", "caller_id", callerID)
		return 0
	}
	return count
}

func (s *accountingService) RegisterCaller(ctx context.Context, callerID int64, username string) error {
	return s.users.Upsert(ctx, callerID, username)
}

func (s *accountingService) RecentSearches(ctx context.Context, callerID int64, limit int) ([]models.Search, error) {
	return s.users.RecentSearches(ctx, callerID, limit)
}

func (s *accountingService) TotalCallers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
