package services

import (
	"context"
	"log"

	"healthpulse/internal/models/db_models"
	"healthpulse/internal/models/request_models"
	"healthpulse/internal/repositories"
	"healthpulse/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (uint, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	ProfileOf(ctx context.Context, accountID uint) (*db_models.HealthProfile, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (uint, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if existing != nil {
		return 0, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}
	profile := &db_models.HealthProfile{
		Age:               request.Age,
		Gender:            request.Gender,
		Location:          request.Location,
		ExerciseFrequency: request.ExerciseFrequency,
		SleepHours:        request.SleepHours,
		DietType:          request.DietType,
	}

	if err := a.accountRepo.Create(ctx, account, profile); err != nil {
		log.Printf("Account creation failed: %v", err)
		return 0, utils.ErrDatabaseError
	}

	return account.ID, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) ProfileOf(ctx context.Context, accountID uint) (*db_models.HealthProfile, error) {
	profile, err := a.accountRepo.ProfileByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}
	return profile, nil
}
