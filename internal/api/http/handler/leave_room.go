package handler

import (
	"context"

	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{
		usecase: usecase,
	}
}

func (h *LeaveRoomHandler) Handle(ctx context.Context, req *RoomPlayerRequest) (*SuccessResponse, int, error) {
	status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID)
	if err != nil {
		return nil, status, err
	}
	return &SuccessResponse{Success: true}, status, nil
}
