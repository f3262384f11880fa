package bootstrap

import (
	"quickdraw-service/internal/api/game"
	httpHandler "quickdraw-service/internal/api/http/handler"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
	wsHandler "quickdraw-service/internal/api/ws/handler"
	wsUsecase "quickdraw-service/internal/api/ws/usecase"
)

func SetupHTTPHandlers(registry httpUsecase.RoomRegistry, host httpUsecase.RoomHost) map[string]interface{} {
	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(registry, host)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(registry)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	readyUseCase := httpUsecase.NewSetReadyUseCase(registry)
	readyHandler := httpHandler.NewReadyHandler(readyUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(registry)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	getRoomUseCase := httpUsecase.NewGetRoomUseCase(registry)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomUseCase)

	strokeUseCase := httpUsecase.NewAddStrokeUseCase(registry)
	strokeHandler := httpHandler.NewStrokeHandler(strokeUseCase)

	guessUseCase := httpUsecase.NewGuessUseCase(registry)
	guessHandler := httpHandler.NewGuessHandler(guessUseCase)

	clearCanvasUseCase := httpUsecase.NewClearCanvasUseCase(registry)
	clearCanvasHandler := httpHandler.NewClearCanvasHandler(clearCanvasUseCase)

	skipWordUseCase := httpUsecase.NewSkipWordUseCase(registry)
	skipWordHandler := httpHandler.NewSkipWordHandler(skipWordUseCase)

	nextRoundUseCase := httpUsecase.NewNextRoundUseCase(registry)
	nextRoundHandler := httpHandler.NewNextRoundHandler(nextRoundUseCase)

	endGameUseCase := httpUsecase.NewEndGameUseCase(registry)
	endGameHandler := httpHandler.NewEndGameHandler(endGameUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(registry)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	return map[string]interface{}{
		"create-room":  createRoomHandler,
		"join-room":    joinRoomHandler,
		"ready":        readyHandler,
		"start-game":   startGameHandler,
		"get-room":     getRoomHandler,
		"stroke":       strokeHandler,
		"guess":        guessHandler,
		"clear-canvas": clearCanvasHandler,
		"skip-word":    skipWordHandler,
		"next-round":   nextRoundHandler,
		"end-game":     endGameHandler,
		"leave-room":   leaveRoomHandler,
	}
}

func SetupWSHandlers(hub wsUsecase.Hub, bridge *game.Bridge) map[string]interface{} {
	roomConnect := wsUsecase.NewRoomConnectUseCase(hub, bridge)
	roomConnectHandler := wsHandler.NewWebSocketRoomHandler(roomConnect)

	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}
