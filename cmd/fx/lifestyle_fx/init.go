package lifestyle_fx

import (
	"go.uber.org/fx"

	"healthpulse/internal/repositories"
	"healthpulse/internal/services"
)

var Module = fx.Provide(provideLifestyleService)

func provideLifestyleService(logRepo repositories.LifestyleLogRepository) services.LifestyleServiceInterface {
	return services.NewLifestyleService(logRepo)
}
