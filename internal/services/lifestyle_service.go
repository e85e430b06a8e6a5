package services

import (
	"context"
	"time"

	"healthpulse/internal/models/db_models"
	"healthpulse/internal/models/request_models"
	"healthpulse/internal/models/response_models"
	"healthpulse/internal/repositories"
	"healthpulse/pkg/utils"
)

type LifestyleServiceInterface interface {
	AppendLog(ctx context.Context, accountID uint, request request_models.LogEntryRequest) (*db_models.LifestyleLog, error)
	History(ctx context.Context, accountID uint) ([]db_models.LifestyleLog, error)
	RecentLogs(ctx context.Context, accountID uint, n int) ([]db_models.LifestyleLog, error)
	ChartData(ctx context.Context, accountID uint) (*response_models.ChartData, error)
}

type LifestyleService struct {
	logRepo repositories.LifestyleLogRepository
}

func NewLifestyleService(logRepo repositories.LifestyleLogRepository) LifestyleServiceInterface {
	return &LifestyleService{logRepo: logRepo}
}

func (l *LifestyleService) AppendLog(ctx context.Context, accountID uint, request request_models.LogEntryRequest) (*db_models.LifestyleLog, error) {
	date := request.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	entry := &db_models.LifestyleLog{
		AccountID:       accountID,
		Date:            date,
		SleepHours:      request.SleepHours,
		ExerciseMinutes: request.ExerciseMinutes,
		WaterGlasses:    request.WaterGlasses,
		Meals:           request.Meals,
		Notes:           request.Notes,
		LoggedAt:        time.Now(),
	}

	if err := l.logRepo.Append(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (l *LifestyleService) History(ctx context.Context, accountID uint) ([]db_models.LifestyleLog, error) {
	logs, err := l.logRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return logs, nil
}

func (l *LifestyleService) RecentLogs(ctx context.Context, accountID uint, n int) ([]db_models.LifestyleLog, error) {
	logs, err := l.logRepo.Recent(ctx, accountID, n)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return logs, nil
}

// ChartData shapes the last 7 entries into index-aligned series for the
// dashboard chart.
func (l *LifestyleService) ChartData(ctx context.Context, accountID uint) (*response_models.ChartData, error) {
	logs, err := l.RecentLogs(ctx, accountID, 7)
	if err != nil {
		return nil, err
	}

	chart := &response_models.ChartData{
		Labels:       []string{},
		SleepData:    []float64{},
		ExerciseData: []int{},
		WaterData:    []int{},
	}
	for _, entry := range logs {
		chart.Labels = append(chart.Labels, entry.Date)
		chart.SleepData = append(chart.SleepData, entry.SleepHours)
		chart.ExerciseData = append(chart.ExerciseData, entry.ExerciseMinutes)
		chart.WaterData = append(chart.WaterData, entry.WaterGlasses)
	}
	return chart, nil
}
