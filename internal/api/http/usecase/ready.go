package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type SetReadyUseCase interface {
	// Execute reports whether every seat is now ready.
	Execute(ctx context.Context, roomID, playerID string, ready bool) (bool, int, error)
}

type setReadyUseCase struct {
	rooms RoomRegistry
}

func NewSetReadyUseCase(rooms RoomRegistry) SetReadyUseCase {
	return &setReadyUseCase{rooms: rooms}
}

func (u *setReadyUseCase) Execute(ctx context.Context, roomID, playerID string, ready bool) (bool, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return false, status, err
	}
	allReady, err := room.ToggleReady(playerID, ready)
	if err != nil {
		return false, statusFor(err), err
	}
	return allReady, fiber.StatusOK, nil
}
