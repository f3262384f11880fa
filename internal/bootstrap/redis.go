package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quickdraw-service/config"
	redisinfra "quickdraw-service/infra/redis"
	"quickdraw-service/internal/initializer"
)

type RoomRedisManager interface {
	Close() error
	PublishRoomMessage(ctx context.Context, msg redisinfra.RoomMessage) error
	SubscribeRoom(ctx context.Context, roomID string) (*redis.PubSub, error)
}

// InitRoomRedis returns nil unless broadcast.mode is redis and redis answers.
func InitRoomRedis(config config.Config) RoomRedisManager {
	if config.Broadcast.Mode != "redis" {
		return nil
	}
	manager, err := initializer.InitRoomRedis(config)
	if err != nil {
		zap.L().Error("Redis unavailable, delivering room events locally", zap.Error(err))
		return nil
	}
	return manager
}
