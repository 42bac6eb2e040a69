package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"medbot/internal/models"
	"medbot/internal/repository"
	"medbot/internal/utils"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f ExportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// DrugExportService dumps the cache contents, stale records included.
type DrugExportService interface {
	Export(ctx context.Context, w io.Writer, format ExportFormat) (int, error)
	List(ctx context.Context) ([]models.Drug, error)
}

type drugExportService struct {
	store repository.DrugRepository
	now   func() time.Time
}

func NewDrugExportService(store repository.DrugRepository) DrugExportService {
	return &drugExportService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *drugExportService) List(ctx context.Context) ([]models.Drug, error) {
	return s.store.List(ctx)
}

func (s *drugExportService) Export(ctx context.Context, w io.Writer, format ExportFormat) (int, error) {
	drugs, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list cached drugs: %w", err)
	}

	switch format {
	case FormatXLSX:
		err = utils.WriteDrugsXLSX(w, drugs, s.now(), s.store.TTL())
	default:
		err = utils.WriteDrugsCSV(w, drugs, s.now(), s.store.TTL())
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write %s export: %w", format, err)
	}
	return len(drugs), nil
}
