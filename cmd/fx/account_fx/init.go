package account_fx

import (
	"go.uber.org/fx"

	"healthpulse/internal/repositories"
	"healthpulse/internal/services"
)

var Module = fx.Provide(provideAccountService)

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
