package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/domain"
)

type AddStrokeUseCase interface {
	Execute(ctx context.Context, roomID, playerID string, stroke domain.Stroke) (domain.Stroke, int, error)
}

type addStrokeUseCase struct {
	rooms RoomRegistry
}

func NewAddStrokeUseCase(rooms RoomRegistry) AddStrokeUseCase {
	return &addStrokeUseCase{rooms: rooms}
}

func (u *addStrokeUseCase) Execute(ctx context.Context, roomID, playerID string, stroke domain.Stroke) (domain.Stroke, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return domain.Stroke{}, status, err
	}
	stored, err := room.AddStroke(playerID, stroke)
	if err != nil {
		return domain.Stroke{}, statusFor(err), err
	}
	return stored, fiber.StatusOK, nil
}

type ClearCanvasUseCase interface {
	Execute(ctx context.Context, roomID, playerID string) (int, error)
}

type clearCanvasUseCase struct {
	rooms RoomRegistry
}

func NewClearCanvasUseCase(rooms RoomRegistry) ClearCanvasUseCase {
	return &clearCanvasUseCase{rooms: rooms}
}

func (u *clearCanvasUseCase) Execute(ctx context.Context, roomID, playerID string) (int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return status, err
	}
	if err := room.ClearCanvas(playerID); err != nil {
		return statusFor(err), err
	}
	return fiber.StatusOK, nil
}

type SkipWordUseCase interface {
	// Execute returns the new word; only the Drawer calls this.
	Execute(ctx context.Context, roomID, playerID string) (string, int, error)
}

type skipWordUseCase struct {
	rooms RoomRegistry
}

func NewSkipWordUseCase(rooms RoomRegistry) SkipWordUseCase {
	return &skipWordUseCase{rooms: rooms}
}

func (u *skipWordUseCase) Execute(ctx context.Context, roomID, playerID string) (string, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return "", status, err
	}
	word, err := room.SkipWord(playerID)
	if err != nil {
		return "", statusFor(err), err
	}
	return word, fiber.StatusOK, nil
}
