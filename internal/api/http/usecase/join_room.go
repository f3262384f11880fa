package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/domain"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, code string) (domain.Seat, int, error)
}

type joinRoomUseCase struct {
	rooms RoomRegistry
}

func NewJoinRoomUseCase(rooms RoomRegistry) JoinRoomUseCase {
	return &joinRoomUseCase{rooms: rooms}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, code string) (domain.Seat, int, error) {
	_, seat, err := u.rooms.Join(code)
	if err != nil {
		return domain.Seat{}, statusFor(err), err
	}
	return seat, fiber.StatusOK, nil
}
