package bootstrap

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quickdraw-service/config"
	"quickdraw-service/internal/api/game"
	gameHub "quickdraw-service/internal/api/ws/hub"
	"quickdraw-service/internal/middleware"
	"quickdraw-service/internal/server"
	"quickdraw-service/pkg/graceful"
)

type App struct {
	config       config.Config
	ctx          context.Context
	cancel       context.CancelFunc
	postgresRepo PostgresRepository
	roomRedis    RoomRedisManager
	kafka        Messaging
	registry     *game.Registry
	bridge       *game.Bridge
	hub          *gameHub.Hub
	rateLimiter  *middleware.RateLimiter
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}
}

func NewApp(config config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.postgresRepo = InitDatabase(a.config)
	a.kafka = SetupMessaging(a.config)
	a.roomRedis = InitRoomRedis(a.config)
	a.rateLimiter = middleware.NewRateLimiter(a.config.RateLimit)

	a.registry = game.NewRegistry(
		RegistryConfig(a.config.Game),
		InitWordBank(a.postgresRepo),
		a.recorders(),
	)
	a.bridge = game.NewBridge(a.registry)
	a.hub = InitWebsocket(a.ctx, a.config, a.registry, a.roomRedis)

	a.httpHandlers = SetupHTTPHandlers(a.registry, a.hub)
	a.wsHandlers = SetupWSHandlers(a.hub, a.bridge)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers, a.rateLimiter)
}

// recorders collects every lifecycle sink that came up.
func (a *App) recorders() game.Recorder {
	recorders := game.Recorders{a.rateLimiter}
	if a.postgresRepo != nil {
		recorders = append(recorders, a.postgresRepo)
	}
	if a.kafka != nil {
		recorders = append(recorders, a.kafka)
	}
	return recorders
}

func (a *App) Start() {
	go func() {
		if err := server.Start(a.fiberApp, a.config.Server.Host, a.config.Server.Port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			a.cancel()
		}
	}()

	zap.L().Info("Server started on port",
		zap.String("port", a.config.Server.Port),
		zap.String("broadcast", a.broadcastMode()))

	defer a.close()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, a.ctx)
}

func (a *App) broadcastMode() string {
	if a.roomRedis != nil {
		return "redis"
	}
	return "local"
}

func (a *App) close() {
	a.cancel()
	a.hub.Close()
	a.registry.Close()

	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka publisher", zap.Error(err))
		}
	}
	if a.roomRedis != nil {
		if err := a.roomRedis.Close(); err != nil {
			zap.L().Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.postgresRepo != nil {
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
	}
}
