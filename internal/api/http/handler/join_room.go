package handler

import (
	"context"

	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type JoinRoomRequest struct {
	Code string `params:"code" validate:"required,alphanum,max=12"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase: usecase,
	}
}

func (h *JoinRoomHandler) Handle(ctx context.Context, req *JoinRoomRequest) (*SeatResponse, int, error) {
	seat, status, err := h.usecase.Execute(ctx, req.Code)
	if err != nil {
		return nil, status, err
	}
	return &SeatResponse{Success: true, Room: seat.Room, PlayerID: seat.PlayerID, Role: seat.Role}, status, nil
}
