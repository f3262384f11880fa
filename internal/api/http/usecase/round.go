package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/internal/api/game"
)

type NextRoundUseCase interface {
	// Execute blocks through the inter-round pause.
	Execute(ctx context.Context, roomID string) (game.RoundOutcome, int, error)
}

type nextRoundUseCase struct {
	rooms RoomRegistry
}

func NewNextRoundUseCase(rooms RoomRegistry) NextRoundUseCase {
	return &nextRoundUseCase{rooms: rooms}
}

func (u *nextRoundUseCase) Execute(ctx context.Context, roomID string) (game.RoundOutcome, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return game.RoundOutcome{}, status, err
	}
	outcome, err := room.NextRound(ctx)
	if err != nil {
		return game.RoundOutcome{}, statusFor(err), err
	}
	return outcome, fiber.StatusOK, nil
}

type EndGameUseCase interface {
	// Execute returns the final score.
	Execute(ctx context.Context, roomID string) (int, int, error)
}

type endGameUseCase struct {
	rooms RoomRegistry
}

func NewEndGameUseCase(rooms RoomRegistry) EndGameUseCase {
	return &endGameUseCase{rooms: rooms}
}

func (u *endGameUseCase) Execute(ctx context.Context, roomID string) (int, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return 0, status, err
	}
	score, err := room.EndGame()
	if err != nil {
		return 0, statusFor(err), err
	}
	return score, fiber.StatusOK, nil
}
