package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomID, playerID string) (int, error)
}

type leaveRoomUseCase struct {
	rooms RoomRegistry
}

func NewLeaveRoomUseCase(rooms RoomRegistry) LeaveRoomUseCase {
	return &leaveRoomUseCase{rooms: rooms}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomID, playerID string) (int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return status, err
	}
	if err := room.Leave(playerID); err != nil {
		return statusFor(err), err
	}
	return fiber.StatusOK, nil
}
