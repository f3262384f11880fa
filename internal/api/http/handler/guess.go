package handler

import (
	"context"

	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type GuessRequest struct {
	RoomID   string `params:"room_id" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Guess    string `json:"guess" validate:"required,max=100"`
}

type GuessResponse struct {
	Success bool `json:"success"`
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
}

type GuessHandler struct {
	usecase httpUsecase.GuessUseCase
}

func NewGuessHandler(usecase httpUsecase.GuessUseCase) *GuessHandler {
	return &GuessHandler{
		usecase: usecase,
	}
}

func (h *GuessHandler) Handle(ctx context.Context, req *GuessRequest) (*GuessResponse, int, error) {
	result, status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID, req.Guess)
	if err != nil {
		return nil, status, err
	}
	return &GuessResponse{Success: true, Correct: result.Correct, Score: result.Score}, status, nil
}
