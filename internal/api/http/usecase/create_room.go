package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/domain"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, settings domain.Settings) (domain.Seat, int, error)
}

type createRoomUseCase struct {
	rooms RoomRegistry
	host  RoomHost
}

func NewCreateRoomUseCase(rooms RoomRegistry, host RoomHost) CreateRoomUseCase {
	return &createRoomUseCase{
		rooms: rooms,
		host:  host,
	}
}

func (u *createRoomUseCase) Execute(ctx context.Context, settings domain.Settings) (domain.Seat, int, error) {
	room, seat, err := u.rooms.Create(settings)
	if err != nil {
		return domain.Seat{}, statusFor(err), err
	}
	u.host.Host(room.ID())
	return seat, fiber.StatusCreated, nil
}
