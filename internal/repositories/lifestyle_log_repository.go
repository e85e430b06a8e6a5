package repositories

import (
	"context"

	"gorm.io/gorm"

	"healthpulse/internal/models/db_models"
)

type LifestyleLogRepository interface {
	Append(ctx context.Context, entry *db_models.LifestyleLog) error
	// Recent returns the last n entries for the account in insertion order,
	// fewer when the history is shorter.
	Recent(ctx context.Context, accountID uint, n int) ([]db_models.LifestyleLog, error)
	ListByAccount(ctx context.Context, accountID uint) ([]db_models.LifestyleLog, error)
}

type lifestyleLogRepository struct {
	db *gorm.DB
}

func NewLifestyleLogRepository(db *gorm.DB) LifestyleLogRepository {
	return &lifestyleLogRepository{db: db}
}

func (r *lifestyleLogRepository) Append(ctx context.Context, entry *db_models.LifestyleLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *lifestyleLogRepository) Recent(ctx context.Context, accountID uint, n int) ([]db_models.LifestyleLog, error) {
	var logs []db_models.LifestyleLog
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id DESC").
		Limit(n).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	// Restore insertion order.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

func (r *lifestyleLogRepository) ListByAccount(ctx context.Context, accountID uint) ([]db_models.LifestyleLog, error) {
	var logs []db_models.LifestyleLog
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
