package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quickdraw-service/domain"
	"quickdraw-service/internal/api/game"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type MockCreateRoomUseCase struct{ mock.Mock }

func (m *MockCreateRoomUseCase) Execute(ctx context.Context, settings domain.Settings) (domain.Seat, int, error) {
	args := m.Called(settings)
	return args.Get(0).(domain.Seat), args.Int(1), args.Error(2)
}

type MockJoinRoomUseCase struct{ mock.Mock }

func (m *MockJoinRoomUseCase) Execute(ctx context.Context, code string) (domain.Seat, int, error) {
	args := m.Called(code)
	return args.Get(0).(domain.Seat), args.Int(1), args.Error(2)
}

type MockSetReadyUseCase struct{ mock.Mock }

func (m *MockSetReadyUseCase) Execute(ctx context.Context, roomID, playerID string, ready bool) (bool, int, error) {
	args := m.Called(roomID, playerID, ready)
	return args.Bool(0), args.Int(1), args.Error(2)
}

type MockAddStrokeUseCase struct{ mock.Mock }

func (m *MockAddStrokeUseCase) Execute(ctx context.Context, roomID, playerID string, stroke domain.Stroke) (domain.Stroke, int, error) {
	args := m.Called(roomID, playerID, stroke)
	return args.Get(0).(domain.Stroke), args.Int(1), args.Error(2)
}

type MockGuessUseCase struct{ mock.Mock }

func (m *MockGuessUseCase) Execute(ctx context.Context, roomID, playerID, guess string) (httpUsecase.GuessResult, int, error) {
	args := m.Called(roomID, playerID, guess)
	return args.Get(0).(httpUsecase.GuessResult), args.Int(1), args.Error(2)
}

type MockNextRoundUseCase struct{ mock.Mock }

func (m *MockNextRoundUseCase) Execute(ctx context.Context, roomID string) (game.RoundOutcome, int, error) {
	args := m.Called(roomID)
	return args.Get(0).(game.RoundOutcome), args.Int(1), args.Error(2)
}

type MockGetRoomUseCase struct{ mock.Mock }

func (m *MockGetRoomUseCase) Execute(ctx context.Context, roomID, playerID string) (domain.RoomView, int, error) {
	args := m.Called(roomID, playerID)
	return args.Get(0).(domain.RoomView), args.Int(1), args.Error(2)
}

type MockLeaveRoomUseCase struct{ mock.Mock }

func (m *MockLeaveRoomUseCase) Execute(ctx context.Context, roomID, playerID string) (int, error) {
	args := m.Called(roomID, playerID)
	return args.Int(0), args.Error(1)
}
