package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"healthpulse/internal/models/db_models"
)

type AccountRepository interface {
	// Create stores the account together with its profile.
	Create(ctx context.Context, account *db_models.Account, profile *db_models.HealthProfile) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByID(ctx context.Context, id uint) (*db_models.Account, error)
	ProfileByAccountID(ctx context.Context, accountID uint) (*db_models.HealthProfile, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Create(ctx context.Context, account *db_models.Account, profile *db_models.HealthProfile) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByID(ctx context.Context, id uint) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) ProfileByAccountID(ctx context.Context, accountID uint) (*db_models.HealthProfile, error) {
	var profile db_models.HealthProfile
	err := a.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
