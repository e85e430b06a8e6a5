package weather_fx

import (
	"go.uber.org/fx"

	"healthpulse/internal/services"
)

var Module = fx.Provide(services.NewWeatherService)
