package handler

import (
	"context"

	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type ReadyRequest struct {
	RoomID   string `params:"room_id" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Ready    *bool  `json:"ready" validate:"required"`
}

type ReadyResponse struct {
	Success  bool `json:"success"`
	AllReady bool `json:"allReady"`
}

type ReadyHandler struct {
	usecase httpUsecase.SetReadyUseCase
}

func NewReadyHandler(usecase httpUsecase.SetReadyUseCase) *ReadyHandler {
	return &ReadyHandler{
		usecase: usecase,
	}
}

func (h *ReadyHandler) Handle(ctx context.Context, req *ReadyRequest) (*ReadyResponse, int, error) {
	allReady, status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID, *req.Ready)
	if err != nil {
		return nil, status, err
	}
	return &ReadyResponse{Success: true, AllReady: allReady}, status, nil
}
