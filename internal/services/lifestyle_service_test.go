package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthpulse/internal/models/request_models"
	"healthpulse/internal/repositories"
)

func TestAppendLogDefaultsDate(t *testing.T) {
	svc := NewLifestyleService(repositories.NewMemoryStore())

	entry, err := svc.AppendLog(context.Background(), 1, request_models.LogEntryRequest{
		SleepHours:      7.5,
		ExerciseMinutes: 30,
		WaterGlasses:    6,
		Meals:           "oatmeal, salad, fish",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Date)
	assert.False(t, entry.LoggedAt.IsZero())
	assert.Equal(t, uint(1), entry.ID)
}

func TestChartDataAlignsSeries(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewLifestyleService(store)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.AppendLog(ctx, 1, request_models.LogEntryRequest{
			Date:            fmt.Sprintf("2026-08-%02d", i+1),
			SleepHours:      6 + float64(i)*0.1,
			ExerciseMinutes: 10 * i,
			WaterGlasses:    i,
			Meals:           "meals",
		})
		require.NoError(t, err)
	}

	chart, err := svc.ChartData(ctx, 1)
	require.NoError(t, err)

	require.Len(t, chart.Labels, 7)
	assert.Equal(t, "2026-08-04", chart.Labels[0])
	assert.Equal(t, "2026-08-10", chart.Labels[6])
	assert.Len(t, chart.SleepData, 7)
	assert.Equal(t, 30, chart.ExerciseData[0])
	assert.Equal(t, 9, chart.WaterData[6])
}

func TestChartDataEmptyHistory(t *testing.T) {
	svc := NewLifestyleService(repositories.NewMemoryStore())

	chart, err := svc.ChartData(context.Background(), 42)
	require.NoError(t, err)

	assert.NotNil(t, chart.Labels)
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.SleepData)
}
