package bootstrap

import (
	"context"

	"quickdraw-service/config"
	"quickdraw-service/internal/api/game"
	gameHub "quickdraw-service/internal/api/ws/hub"
	"quickdraw-service/internal/initializer"
)

func InitWebsocket(ctx context.Context, config config.Config, registry *game.Registry, roomRedis RoomRedisManager) *gameHub.Hub {
	var bus gameHub.RoomBus
	if roomRedis != nil {
		bus = roomRedis
	}
	return initializer.InitWebsocket(ctx, config, registry, bus)
}
