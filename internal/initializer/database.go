package initializer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quickdraw-service/config"
	"quickdraw-service/infra/postgres"
	"quickdraw-service/internal/api/game"
)

func InitDatabase(appConfig config.Config) (*postgres.Repository, error) {
	return postgres.NewRepository(appConfig.Postgres.DSN())
}

// InitWordBank seeds the catalog table with the built-in words and loads the
// table into a WordBank. Any failure falls back to the built-in catalog.
func InitWordBank(repo *postgres.Repository) *game.WordBank {
	if repo == nil {
		return game.DefaultWordBank()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repo.SeedWords(ctx, game.DefaultWords); err != nil {
		zap.L().Warn("Failed to seed word catalog, using built-in words", zap.Error(err))
		return game.DefaultWordBank()
	}

	words, err := repo.ListWords(ctx)
	if err != nil {
		zap.L().Warn("Failed to load word catalog, using built-in words", zap.Error(err))
		return game.DefaultWordBank()
	}

	bank, err := game.NewWordBank(words)
	if err != nil {
		zap.L().Warn("Stored word catalog is incomplete, using built-in words", zap.Error(err))
		return game.DefaultWordBank()
	}
	zap.L().Info("Word catalog loaded from database", zap.Int("words", bank.Len()))
	return bank
}
