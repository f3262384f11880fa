package handler

import (
	"context"

	"quickdraw-service/domain"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type GetRoomRequest struct {
	RoomID   string `params:"room_id" validate:"required"`
	PlayerID string `query:"playerId"`
}

type GetRoomResponse struct {
	Success bool            `json:"success"`
	Room    domain.RoomView `json:"room"`
}

type GetRoomHandler struct {
	usecase httpUsecase.GetRoomUseCase
}

func NewGetRoomHandler(usecase httpUsecase.GetRoomUseCase) *GetRoomHandler {
	return &GetRoomHandler{
		usecase: usecase,
	}
}

func (h *GetRoomHandler) Handle(ctx context.Context, req *GetRoomRequest) (*GetRoomResponse, int, error) {
	view, status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomResponse{Success: true, Room: view}, status, nil
}
