package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		APIKey:   "test-key",
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: time.Second},
		UVClient: &http.Client{Timeout: time.Second},
	}
}

func TestGetCurrentWithoutCredential(t *testing.T) {
	svc := &WeatherService{APIKey: "", BaseURL: "http://127.0.0.1:1"}

	snap := svc.GetCurrent(context.Background(), "Nowhere")

	require.NotNil(t, snap)
	assert.True(t, snap.Fallback)
	assert.Equal(t, "Nowhere", snap.Location)
	assert.Equal(t, "Unknown", snap.Country)
	assert.Equal(t, 22.0, snap.Temperature)
	assert.Equal(t, 60, snap.Humidity)
	assert.Equal(t, 1013, snap.Pressure)
	assert.Equal(t, "Clear", snap.WeatherMain)
	assert.Equal(t, 10.0, snap.VisibilityKm)
	require.NotNil(t, snap.UVIndex)
	assert.Equal(t, 5.0, *snap.UVIndex)
}

func TestGetCurrentNormalizesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Hanoi", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{
			"name": "Hanoi",
			"sys": {"country": "VN"},
			"main": {"temp": 31.4, "feels_like": 36.2, "humidity": 78, "pressure": 1005},
			"weather": [{"main": "Rain", "description": "light rain"}],
			"wind": {"speed": 3.6},
			"visibility": 8000,
			"coord": {"lat": 21.03, "lon": 105.85}
		}`))
	})
	mux.HandleFunc("/uvi", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": 9.2}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	snap := svc.GetCurrent(context.Background(), "Hanoi")

	require.NotNil(t, snap)
	assert.False(t, snap.Fallback)
	assert.Equal(t, "Hanoi", snap.Location)
	assert.Equal(t, "VN", snap.Country)
	assert.Equal(t, 31.4, snap.Temperature)
	assert.Equal(t, 78, snap.Humidity)
	assert.Equal(t, "light rain", snap.WeatherDescription)
	assert.Equal(t, 8.0, snap.VisibilityKm)
	require.NotNil(t, snap.UVIndex)
	assert.Equal(t, 9.2, *snap.UVIndex)
}

func TestGetCurrentDefaultsMissingVisibility(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "Oslo",
			"sys": {"country": "NO"},
			"main": {"temp": 12, "feels_like": 10, "humidity": 55, "pressure": 1020},
			"weather": [{"main": "Clouds", "description": "overcast clouds"}],
			"wind": {"speed": 2},
			"coord": {"lat": 59.91, "lon": 10.75}
		}`))
	})
	mux.HandleFunc("/uvi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	snap := svc.GetCurrent(context.Background(), "Oslo")

	require.NotNil(t, snap)
	assert.False(t, snap.Fallback)
	assert.Equal(t, 10.0, snap.VisibilityKm)
	assert.Nil(t, snap.UVIndex, "a failed UV lookup must not degrade the snapshot")
}

func TestGetCurrentFallsBackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	snap := svc.GetCurrent(context.Background(), "Paris")

	require.NotNil(t, snap)
	assert.True(t, snap.Fallback)
	assert.Equal(t, "Paris", snap.Location)
}

func TestGetCurrentFallsBackOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": ""}`))
	}))
	defer server.Close()

	svc := newTestWeatherService(server.URL)
	snap := svc.GetCurrent(context.Background(), "Berlin")

	require.NotNil(t, snap)
	assert.True(t, snap.Fallback)
	assert.Equal(t, "Berlin", snap.Location)
}
