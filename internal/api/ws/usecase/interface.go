package wsUsecase

import (
	"quickdraw-service/domain"
	"quickdraw-service/internal/api/game"
	"quickdraw-service/internal/api/ws/hub"
)

type SessionBridge interface {
	Authenticate(roomID, playerID string) (*game.Room, error)
	Attach(connID, roomID, playerID string) error
	Detach(connID string)
}

type Hub interface {
	RegisterClient(client *domain.Client) error
	UnregisterClient(client *domain.Client)
	SendMessageToClient(client *domain.Client, msg *hub.Message) error
	Serve(client *domain.Client)
}
