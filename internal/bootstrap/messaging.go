package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"quickdraw-service/config"
	"quickdraw-service/domain"
	"quickdraw-service/internal/initializer"
)

type Messaging interface {
	Close() error
	Record(ctx context.Context, event domain.LifecycleEvent)
}

// SetupMessaging returns nil when kafka is disabled or misconfigured.
func SetupMessaging(config config.Config) Messaging {
	if !config.Kafka.Enabled {
		return nil
	}
	publisher, err := initializer.InitMessaging(config)
	if err != nil {
		zap.L().Error("Kafka publisher unavailable, lifecycle events will not be streamed", zap.Error(err))
		return nil
	}
	return publisher
}
