package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/domain"
)

type GetRoomUseCase interface {
	// Execute returns the reconnect view; the word text is included only for the Drawer.
	Execute(ctx context.Context, roomID, playerID string) (domain.RoomView, int, error)
}

type getRoomUseCase struct {
	rooms RoomRegistry
}

func NewGetRoomUseCase(rooms RoomRegistry) GetRoomUseCase {
	return &getRoomUseCase{rooms: rooms}
}

func (u *getRoomUseCase) Execute(ctx context.Context, roomID, playerID string) (domain.RoomView, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return domain.RoomView{}, status, err
	}
	return room.View(playerID), fiber.StatusOK, nil
}
