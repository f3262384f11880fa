package wsUsecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quickdraw-service/domain"
	"quickdraw-service/internal/api/ws/hub"
)

const EventRoomState = "room:state"

type RoomConnectUseCase interface {
	// Authorize runs before the upgrade and decides the HTTP status of a rejected handshake.
	Authorize(roomID, playerID string) (int, error)
	Execute(c *websocket.Conn, ctx context.Context, roomID, playerID string)
}

type roomConnectUseCase struct {
	hub    Hub
	bridge SessionBridge
	logger *zap.Logger
}

func NewRoomConnectUseCase(hub Hub, bridge SessionBridge) RoomConnectUseCase {
	return &roomConnectUseCase{
		hub:    hub,
		bridge: bridge,
		logger: zap.L().Named("ws"),
	}
}

func (u *roomConnectUseCase) Authorize(roomID, playerID string) (int, error) {
	if _, err := u.bridge.Authenticate(roomID, playerID); err != nil {
		return statusFor(err), err
	}
	return fiber.StatusOK, nil
}

// Execute binds the socket to the seated player, sends the reconnect view and
// blocks until the connection ends.
func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, roomID, playerID string) {
	sendErrorToClient := func(msg string, code int) {
		errorMessage := domain.WebSocketErrorMessage{
			Type:    "error",
			Message: msg,
			Code:    code,
		}
		if err := c.WriteJSON(errorMessage); err != nil {
			u.logger.Debug("failed to send error frame", zap.Error(err))
		}
	}

	room, err := u.bridge.Authenticate(roomID, playerID)
	if err != nil {
		sendErrorToClient(err.Error(), statusFor(err))
		return
	}

	client := &domain.Client{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		PlayerID: playerID,
		Conn:     c,
		Send:     make(chan []byte, 256),
	}
	if err := u.hub.RegisterClient(client); err != nil {
		sendErrorToClient(err.Error(), fiber.StatusServiceUnavailable)
		return
	}

	if err := u.bridge.Attach(client.ID, roomID, playerID); err != nil {
		u.hub.UnregisterClient(client)
		sendErrorToClient(err.Error(), statusFor(err))
		return
	}
	defer u.bridge.Detach(client.ID)

	u.logger.Info("player connected",
		zap.String("conn_id", client.ID),
		zap.String("room_id", roomID),
		zap.String("player_id", playerID))

	if err := u.hub.SendMessageToClient(client, &hub.Message{Type: EventRoomState, Content: room.View(playerID)}); err != nil {
		u.logger.Warn("failed to queue room state", zap.String("conn_id", client.ID), zap.Error(err))
	}

	u.hub.Serve(client)

	u.logger.Info("player connection closed",
		zap.String("conn_id", client.ID),
		zap.String("room_id", roomID),
		zap.String("player_id", playerID))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
