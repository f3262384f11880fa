package handler

import (
	"context"

	"quickdraw-service/domain"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type NextRoundResponse struct {
	Success    bool            `json:"success"`
	GameEnded  bool            `json:"gameEnded"`
	FinalScore int             `json:"finalScore"`
	Round      int             `json:"round,omitempty"`
	Players    []domain.Player `json:"players,omitempty"`
}

type NextRoundHandler struct {
	usecase httpUsecase.NextRoundUseCase
}

func NewNextRoundHandler(usecase httpUsecase.NextRoundUseCase) *NextRoundHandler {
	return &NextRoundHandler{
		usecase: usecase,
	}
}

func (h *NextRoundHandler) Handle(ctx context.Context, req *RoomRequest) (*NextRoundResponse, int, error) {
	outcome, status, err := h.usecase.Execute(ctx, req.RoomID)
	if err != nil {
		return nil, status, err
	}
	return &NextRoundResponse{
		Success:    true,
		GameEnded:  outcome.GameEnded,
		FinalScore: outcome.FinalScore,
		Round:      outcome.Round,
		Players:    outcome.Players,
	}, status, nil
}

type EndGameResponse struct {
	Success    bool `json:"success"`
	FinalScore int  `json:"finalScore"`
}

type EndGameHandler struct {
	usecase httpUsecase.EndGameUseCase
}

func NewEndGameHandler(usecase httpUsecase.EndGameUseCase) *EndGameHandler {
	return &EndGameHandler{
		usecase: usecase,
	}
}

func (h *EndGameHandler) Handle(ctx context.Context, req *RoomRequest) (*EndGameResponse, int, error) {
	score, status, err := h.usecase.Execute(ctx, req.RoomID)
	if err != nil {
		return nil, status, err
	}
	return &EndGameResponse{Success: true, FinalScore: score}, status, nil
}
