package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"healthpulse/internal/models/response_models"
)

// WeatherServiceInterface fetches current conditions for a location. It
// never fails outward: every error path degrades to a synthetic fallback
// snapshot.
type WeatherServiceInterface interface {
	GetCurrent(ctx context.Context, location string) *response_models.WeatherSnapshot
}

type WeatherService struct {
	APIKey   string
	BaseURL  string
	Client   *http.Client
	UVClient *http.Client
}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{
		APIKey:   os.Getenv("WEATHER_API_KEY"),
		BaseURL:  "https://api.openweathermap.org/data/2.5",
		Client:   &http.Client{Timeout: 10 * time.Second},
		UVClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility *float64 `json:"visibility"`
	Coord      struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

func (s *WeatherService) GetCurrent(ctx context.Context, location string) *response_models.WeatherSnapshot {
	if s.APIKey == "" {
		return fallbackSnapshot(location)
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", s.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return fallbackSnapshot(location)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("Weather API request failed: %v", err)
		return fallbackSnapshot(location)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather API returned status %d for %q", resp.StatusCode, location)
		return fallbackSnapshot(location)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Weather data parsing error: %v", err)
		return fallbackSnapshot(location)
	}
	if data.Name == "" || len(data.Weather) == 0 {
		log.Printf("Weather response missing expected fields for %q", location)
		return fallbackSnapshot(location)
	}

	visibilityMeters := 10000.0
	if data.Visibility != nil {
		visibilityMeters = *data.Visibility
	}

	return &response_models.WeatherSnapshot{
		Location:           data.Name,
		Country:            data.Sys.Country,
		Temperature:        data.Main.Temp,
		FeelsLike:          data.Main.FeelsLike,
		Humidity:           data.Main.Humidity,
		Pressure:           data.Main.Pressure,
		WeatherMain:        data.Weather[0].Main,
		WeatherDescription: data.Weather[0].Description,
		WindSpeed:          data.Wind.Speed,
		VisibilityKm:       visibilityMeters / 1000,
		UVIndex:            s.uvIndex(ctx, data.Coord.Lat, data.Coord.Lon),
	}
}

// uvIndex looks up the UV index for the coordinates. Failures leave the
// snapshot without a UV value instead of degrading the whole fetch.
func (s *WeatherService) uvIndex(ctx context.Context, lat, lon float64) *float64 {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/uvi?"+q.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := s.UVClient.Do(req)
	if err != nil {
		log.Printf("UV index request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var data struct {
		Value *float64 `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil
	}
	return data.Value
}

func fallbackSnapshot(location string) *response_models.WeatherSnapshot {
	uv := 5.0
	return &response_models.WeatherSnapshot{
		Location:           location,
		Country:            "Unknown",
		Temperature:        22,
		FeelsLike:          22,
		Humidity:           60,
		Pressure:           1013,
		WeatherMain:        "Clear",
		WeatherDescription: "clear sky",
		WindSpeed:          5,
		VisibilityKm:       10,
		UVIndex:            &uv,
		Fallback:           true,
	}
}
