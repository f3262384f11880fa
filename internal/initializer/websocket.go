package initializer

import (
	"context"

	"quickdraw-service/config"
	gameHub "quickdraw-service/internal/api/ws/hub"
)

// InitWebsocket builds the room host. A nil bus delivers room events in process.
func InitWebsocket(ctx context.Context, appConfig config.Config, registry gameHub.Registry, bus gameHub.RoomBus) *gameHub.Hub {
	var opts []gameHub.Option
	if bus != nil {
		opts = append(opts, gameHub.WithRelay(bus))
	}

	hub := gameHub.NewHub(registry, appConfig.Game.DisposeGrace, opts...)
	hub.Run(ctx)
	return hub
}
