package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/domain"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, roomID, playerID string) (domain.PublicRoom, int, error)
}

type startGameUseCase struct {
	rooms RoomRegistry
}

func NewStartGameUseCase(rooms RoomRegistry) StartGameUseCase {
	return &startGameUseCase{rooms: rooms}
}

func (u *startGameUseCase) Execute(ctx context.Context, roomID, playerID string) (domain.PublicRoom, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return domain.PublicRoom{}, status, err
	}
	public, err := room.Start(playerID)
	if err != nil {
		return domain.PublicRoom{}, statusFor(err), err
	}
	return public, fiber.StatusOK, nil
}
