package httpUsecase

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type GuessResult struct {
	Correct bool
	Score   int
}

type GuessUseCase interface {
	Execute(ctx context.Context, roomID, playerID, guess string) (GuessResult, int, error)
}

type guessUseCase struct {
	rooms RoomRegistry
}

func NewGuessUseCase(rooms RoomRegistry) GuessUseCase {
	return &guessUseCase{rooms: rooms}
}

func (u *guessUseCase) Execute(ctx context.Context, roomID, playerID, guess string) (GuessResult, int, error) {
	room, status, err := lookupRoom(u.rooms, roomID)
	if err != nil {
		return GuessResult{}, status, err
	}
	correct, score, err := room.AddGuess(playerID, guess)
	if err != nil {
		return GuessResult{}, statusFor(err), err
	}
	return GuessResult{Correct: correct, Score: score}, fiber.StatusOK, nil
}
