package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medbot/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_user_repository.go -package=mocks medbot/internal/repository UserRepository
type UserRepository interface {
	Upsert(ctx context.Context, callerID int64, username string) error
	RecordSearch(ctx context.Context, callerID int64, query string) error
	GetSearchCount(ctx context.Context, callerID int64) (int64, error)
	RecentSearches(ctx context.Context, callerID int64, limit int) ([]models.Search, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *userRepository) Upsert(ctx context.Context, callerID int64, username string) error {
	user := models.User{
		CallerID:   callerID,
		Username:   username,
		LastActive: r.now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "caller_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "last_active"}),
	}).Create(&user).Error
}

// RecordSearch appends the event row and bumps the caller's counter in one
// transaction. Unknown callers get a users row in the same unit of work.
func (r *userRepository) RecordSearch(ctx context.Context, callerID int64, query string) error {
	now := r.now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{CallerID: callerID, LastActive: now}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}

		search := models.Search{
			CallerID:  callerID,
			QueryText: query,
			CreatedAt: now,
		}
		if err := tx.Create(&search).Error; err != nil {
			return fmt.Errorf("insert search: %w", err)
		}

		res := tx.Model(&models.User{}).
			Where("caller_id = ?", callerID).
			Updates(map[string]interface{}{
				"search_count": gorm.Expr("search_count + ?", 1),
				"last_active":  now,
			})
		if res.Error != nil {
			return fmt.Errorf("increment search count: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("increment search count: caller %d missing", callerID)
		}
		return nil
	})
}

// GetSearchCount is 0 for callers that never searched.
func (r *userRepository) GetSearchCount(ctx context.Context, callerID int64) (int64, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("search_count").
		Where("caller_id = ?", callerID).
		Take(&user).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.SearchCount, nil
}

func (r *userRepository) RecentSearches(ctx context.Context, callerID int64, limit int) ([]models.Search, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var searches []models.Search
	err := r.db.WithContext(ctx).
		Where("caller_id = ?", callerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&searches).
		Error
	return searches, err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&count).
		Error
	return count, err
}
