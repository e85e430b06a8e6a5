package response_models

// WeatherSnapshot is a point-in-time normalized weather record. Fallback is
// set when the record is synthetic rather than fetched from the provider.
type WeatherSnapshot struct {
	Location           string   `json:"location"`
	Country            string   `json:"country"`
	Temperature        float64  `json:"temperature"`
	FeelsLike          float64  `json:"feels_like"`
	Humidity           int      `json:"humidity"`
	Pressure           int      `json:"pressure"`
	WeatherMain        string   `json:"weather_main"`
	WeatherDescription string   `json:"weather_description"`
	WindSpeed          float64  `json:"wind_speed"`
	VisibilityKm       float64  `json:"visibility"`
	UVIndex            *float64 `json:"uv_index,omitempty"`
	Fallback           bool     `json:"fallback,omitempty"`
}
