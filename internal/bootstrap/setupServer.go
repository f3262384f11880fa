package bootstrap

import (
	"github.com/gofiber/fiber/v2"

	"quickdraw-service/config"
	httpHandler "quickdraw-service/internal/api/http/handler"
	wsHandler "quickdraw-service/internal/api/ws/handler"
	"quickdraw-service/internal/handler"
	"quickdraw-service/internal/middleware"
	"quickdraw-service/internal/server"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}, rateLimiter *middleware.RateLimiter) *fiber.App {
	serverConfig := server.Config{
		AppName:      config.App.Name,
		Port:         config.Server.Port,
		AllowOrigins: config.Server.AllowOrigins,
		IdleTimeout:  config.Server.IdleTimeout,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	app := server.NewFiberApp(serverConfig)

	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	readyHandler := httpHandlers["ready"].(*httpHandler.ReadyHandler)
	startGameHandler := httpHandlers["start-game"].(*httpHandler.StartGameHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	strokeHandler := httpHandlers["stroke"].(*httpHandler.StrokeHandler)
	guessHandler := httpHandlers["guess"].(*httpHandler.GuessHandler)
	clearCanvasHandler := httpHandlers["clear-canvas"].(*httpHandler.ClearCanvasHandler)
	skipWordHandler := httpHandlers["skip-word"].(*httpHandler.SkipWordHandler)
	nextRoundHandler := httpHandlers["next-round"].(*httpHandler.NextRoundHandler)
	endGameHandler := httpHandlers["end-game"].(*httpHandler.EndGameHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)

	api := app.Group("/api", rateLimiter.Middleware())
	perRoom := rateLimiter.RoomMiddleware()

	api.Post("/rooms", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.SeatResponse](createRoomHandler))
	api.Post("/rooms/:code/join", handler.HandleBasic[httpHandler.JoinRoomRequest, httpHandler.SeatResponse](joinRoomHandler))
	api.Get("/rooms/:room_id", perRoom, handler.HandleBasic[httpHandler.GetRoomRequest, httpHandler.GetRoomResponse](getRoomHandler))
	api.Post("/rooms/:room_id/ready", perRoom, handler.HandleBasic[httpHandler.ReadyRequest, httpHandler.ReadyResponse](readyHandler))
	api.Post("/rooms/:room_id/start", perRoom, handler.HandleBasic[httpHandler.RoomPlayerRequest, httpHandler.StartGameResponse](startGameHandler))
	api.Post("/rooms/:room_id/stroke", perRoom, handler.HandleBasic[httpHandler.StrokeRequest, httpHandler.StrokeResponse](strokeHandler))
	api.Post("/rooms/:room_id/guess", perRoom, handler.HandleBasic[httpHandler.GuessRequest, httpHandler.GuessResponse](guessHandler))
	api.Post("/rooms/:room_id/clear", perRoom, handler.HandleBasic[httpHandler.RoomPlayerRequest, httpHandler.SuccessResponse](clearCanvasHandler))
	api.Post("/rooms/:room_id/skip-word", perRoom, handler.HandleBasic[httpHandler.RoomPlayerRequest, httpHandler.SkipWordResponse](skipWordHandler))
	api.Post("/rooms/:room_id/next-round", perRoom, handler.HandleBasic[httpHandler.RoomRequest, httpHandler.NextRoundResponse](nextRoundHandler))
	api.Post("/rooms/:room_id/end-game", perRoom, handler.HandleBasic[httpHandler.RoomRequest, httpHandler.EndGameResponse](endGameHandler))
	api.Post("/rooms/:room_id/leave", perRoom, handler.HandleBasic[httpHandler.RoomPlayerRequest, httpHandler.SuccessResponse](leaveRoomHandler))

	wsRoute := app.Group("/ws")
	roomConnectHandler := wsHandlers["room-connect"].(*wsHandler.WebSocketRoomHandler)
	wsRoute.Get("/rooms/:room_id", roomConnectHandler.Upgrade(), handler.HandleWithFiberWS[wsHandler.WebSocketRoomRequest](roomConnectHandler))

	return app
}
