package handler

import (
	"context"

	"quickdraw-service/domain"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type StartGameResponse struct {
	Success bool              `json:"success"`
	Room    domain.PublicRoom `json:"room"`
}

type StartGameHandler struct {
	usecase httpUsecase.StartGameUseCase
}

func NewStartGameHandler(usecase httpUsecase.StartGameUseCase) *StartGameHandler {
	return &StartGameHandler{
		usecase: usecase,
	}
}

func (h *StartGameHandler) Handle(ctx context.Context, req *RoomPlayerRequest) (*StartGameResponse, int, error) {
	room, status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID)
	if err != nil {
		return nil, status, err
	}
	return &StartGameResponse{Success: true, Room: room}, status, nil
}
