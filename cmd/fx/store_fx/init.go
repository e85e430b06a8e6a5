package store_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"healthpulse/internal/infra"
	"healthpulse/internal/repositories"
)

var Module = fx.Provide(provideRepositories)

// provideRepositories selects the backing store: postgres when POSTGRES_URL
// is set, otherwise the process-lifetime in-memory store.
func provideRepositories(lc fx.Lifecycle) (repositories.AccountRepository, repositories.LifestyleLogRepository) {
	if dsn := os.Getenv("POSTGRES_URL"); dsn != "" {
		db := infra.InitPostgresql()
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		return repositories.NewAccountRepository(db), repositories.NewLifestyleLogRepository(db)
	}

	log.Println("POSTGRES_URL not set; using in-memory store, data is lost on restart")
	store := repositories.NewMemoryStore()
	return store, store
}
