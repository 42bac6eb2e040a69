package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medbot/internal/models"
)

var (
	ErrMissingID    = errors.New("drug record has no id")
	ErrNamelessDrug = errors.New("drug record has neither brand nor generic name")
)

//go:generate mockgen -destination=../mocks/mock_drug_repository.go -package=mocks medbot/internal/repository DrugRepository
type DrugRepository interface {
	Put(ctx context.Context, drug *models.Drug) error
	FindByNameFragment(ctx context.Context, term string) (*models.Drug, error)
	FindAnyByNameFragment(ctx context.Context, term string) (*models.Drug, error)
	GetByID(ctx context.Context, id string) (*models.Drug, error)
	List(ctx context.Context) ([]models.Drug, error)
	Count(ctx context.Context) (int64, error)
	PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error)
	Clear(ctx context.Context) (int64, error)
	TTL() time.Duration
}

type drugRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewDrugRepository(db *gorm.DB, ttl time.Duration) DrugRepository {
	return &drugRepository{
		db:  db,
		ttl: ttl,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *drugRepository) TTL() time.Duration {
	return r.ttl
}

// Put upserts by id. A zero FetchedAt is stamped with the write time, and an
// older FetchedAt never replaces a newer stored one; the comparison happens in
// the upsert statement itself so racing writers cannot move it backwards.
func (r *drugRepository) Put(ctx context.Context, drug *models.Drug) error {
	if drug.ID == "" {
		return ErrMissingID
	}
	if drug.Nameless() {
		return ErrNamelessDrug
	}
	if drug.FetchedAt.IsZero() {
		drug.FetchedAt = r.now()
	}
	drug.FetchedAt = drug.FetchedAt.UTC()

	db := r.db.WithContext(ctx)
	updates := clause.AssignmentColumns([]string{"brand_name", "generic_name", "manufacturer", "indications", "raw"})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "last_fetched"},
		Value:  latestFetchedExpr(db.Dialector.Name()),
	})

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "drug_id"}},
		DoUpdates: updates,
	}).Create(drug).Error
}

// latestFetchedExpr keeps the larger of the stored and incoming last_fetched.
func latestFetchedExpr(dialect string) clause.Expr {
	switch dialect {
	case "mysql":
		return gorm.Expr("GREATEST(last_fetched, VALUES(last_fetched))")
	case "sqlite":
		return gorm.Expr("MAX(drugs_cache.last_fetched, excluded.last_fetched)")
	default:
		return gorm.Expr("GREATEST(drugs_cache.last_fetched, excluded.last_fetched)")
	}
}

// FindByNameFragment returns the most recently fetched record whose brand or
// generic name contains term, ignoring case. Records past the TTL are left in
// place but not returned. A nil record with a nil error means no match.
func (r *drugRepository) FindByNameFragment(ctx context.Context, term string) (*models.Drug, error) {
	since := r.now().Add(-r.ttl)
	return r.find(ctx, term, &since)
}

// FindAnyByNameFragment is FindByNameFragment without the TTL filter.
func (r *drugRepository) FindAnyByNameFragment(ctx context.Context, term string) (*models.Drug, error) {
	return r.find(ctx, term, nil)
}

func (r *drugRepository) find(ctx context.Context, term string, freshSince *time.Time) (*models.Drug, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}
	pattern := "%" + escapeLike(term) + "%"

	q := r.db.WithContext(ctx).
		Where("(LOWER(brand_name) LIKE ? ESCAPE '!' OR LOWER(generic_name) LIKE ? ESCAPE '!')", pattern, pattern).
		Where("(brand_name <> '' OR generic_name <> '')")
	if freshSince != nil {
		q = q.Where("last_fetched > ?", freshSince.UTC())
	}

	var drug models.Drug
	err := q.Order("last_fetched DESC").Take(&drug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &drug, nil
}

// GetByID ignores the TTL. A nil record with a nil error means no such id.
func (r *drugRepository) GetByID(ctx context.Context, id string) (*models.Drug, error) {
	var drug models.Drug
	err := r.db.WithContext(ctx).Take(&drug, "drug_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &drug, nil
}

func (r *drugRepository) List(ctx context.Context) ([]models.Drug, error) {
	var drugs []models.Drug
	err := r.db.WithContext(ctx).
		Order("brand_name, generic_name").
		Find(&drugs).
		Error
	return drugs, err
}

func (r *drugRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Drug{}).
		Count(&count).
		Error
	return count, err
}

// PurgeOlderThan deletes records fetched more than age ago.
func (r *drugRepository) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("last_fetched < ?", r.now().Add(-age)).
		Delete(&models.Drug{})
	return res.RowsAffected, res.Error
}

func (r *drugRepository) Clear(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.Drug{})
	return res.RowsAffected, res.Error
}

// escapeLike neutralises LIKE wildcards using '!' as the escape character.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
