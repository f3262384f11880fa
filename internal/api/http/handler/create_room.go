package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"quickdraw-service/domain"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type SettingsRequest struct {
	RoundDuration int    `json:"roundDuration" validate:"omitempty,min=10,max=600"`
	MaxRounds     int    `json:"maxRounds" validate:"omitempty,min=1,max=20"`
	Difficulty    string `json:"difficulty" validate:"omitempty,oneof=easy medium hard mixed"`
}

type CreateRoomRequest struct {
	Settings *SettingsRequest `json:"settings"`
}

type SeatResponse struct {
	Success  bool              `json:"success"`
	Room     domain.PublicRoom `json:"room"`
	PlayerID string            `json:"playerId"`
	Role     domain.Role       `json:"role"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase: usecase,
	}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*SeatResponse, int, error) {
	var settings domain.Settings
	if req.Settings != nil {
		settings = domain.Settings{
			RoundDurationSeconds: req.Settings.RoundDuration,
			MaxRounds:            req.Settings.MaxRounds,
			Difficulty:           domain.Difficulty(req.Settings.Difficulty),
		}
	}

	seat, status, err := h.usecase.Execute(ctx, settings)
	if err != nil {
		return nil, status, err
	}

	fbrCtx.Location("/api/rooms/" + seat.Room.ID)
	return &SeatResponse{Success: true, Room: seat.Room, PlayerID: seat.PlayerID, Role: seat.Role}, status, nil
}
