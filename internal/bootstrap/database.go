package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"quickdraw-service/config"
	"quickdraw-service/domain"
	"quickdraw-service/infra/postgres"
	"quickdraw-service/internal/api/game"
	"quickdraw-service/internal/initializer"
)

type PostgresRepository interface {
	Close() error
	Record(ctx context.Context, event domain.LifecycleEvent)
}

// InitDatabase returns nil when postgres is disabled or unreachable.
func InitDatabase(config config.Config) PostgresRepository {
	if !config.Postgres.Enabled {
		return nil
	}
	repo, err := initializer.InitDatabase(config)
	if err != nil {
		zap.L().Error("PostgreSQL unavailable, running without history", zap.Error(err))
		return nil
	}
	return repo
}

func InitWordBank(repo PostgresRepository) *game.WordBank {
	pg, _ := repo.(*postgres.Repository)
	return initializer.InitWordBank(pg)
}
