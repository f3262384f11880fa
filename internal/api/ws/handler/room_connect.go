package wsHandler

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	wsUsecase "quickdraw-service/internal/api/ws/usecase"
)

// WebSocketRoomHandler serves GET /ws/rooms/:room_id?player_id=.
type WebSocketRoomHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}

type WebSocketRoomRequest struct{}

func NewWebSocketRoomHandler(usecase wsUsecase.RoomConnectUseCase) *WebSocketRoomHandler {
	return &WebSocketRoomHandler{
		usecase: usecase,
	}
}

// Upgrade admits only websocket handshakes from players seated in the room.
func (h *WebSocketRoomHandler) Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "websocket upgrade required"})
		}

		status, err := h.usecase.Authorize(c.Params("room_id"), c.Query("player_id"))
		if err != nil {
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals("allowed", true)
		return c.Next()
	}
}

func (h *WebSocketRoomHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *WebSocketRoomRequest) {
	h.usecase.Execute(c, ctx, c.Params("room_id"), c.Query("player_id"))
}
