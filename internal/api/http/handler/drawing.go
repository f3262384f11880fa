package handler

import (
	"context"

	"quickdraw-service/domain"
	httpUsecase "quickdraw-service/internal/api/http/usecase"
)

type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type StrokeBody struct {
	ID        string         `json:"id" validate:"omitempty,max=64"`
	Points    []PointRequest `json:"points" validate:"required,min=1,max=5000"`
	Color     string         `json:"color" validate:"required,max=32"`
	Size      float64        `json:"size" validate:"gt=0,lte=200"`
	Timestamp int64          `json:"timestamp" validate:"gte=0"`
}

type StrokeRequest struct {
	RoomID   string     `params:"room_id" validate:"required"`
	PlayerID string     `json:"playerId" validate:"required"`
	Stroke   StrokeBody `json:"stroke"`
}

type StrokeResponse struct {
	Success bool          `json:"success"`
	Stroke  domain.Stroke `json:"stroke"`
}

type StrokeHandler struct {
	usecase httpUsecase.AddStrokeUseCase
}

func NewStrokeHandler(usecase httpUsecase.AddStrokeUseCase) *StrokeHandler {
	return &StrokeHandler{
		usecase: usecase,
	}
}

func (h *StrokeHandler) Handle(ctx context.Context, req *StrokeRequest) (*StrokeResponse, int, error) {
	points := make([]domain.Point, len(req.Stroke.Points))
	for i, p := range req.Stroke.Points {
		points[i] = domain.Point{X: p.X, Y: p.Y}
	}

	stored, status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID, domain.Stroke{
		ID:        req.Stroke.ID,
		Points:    points,
		Color:     req.Stroke.Color,
		Size:      req.Stroke.Size,
		Timestamp: req.Stroke.Timestamp,
	})
	if err != nil {
		return nil, status, err
	}
	return &StrokeResponse{Success: true, Stroke: stored}, status, nil
}

type ClearCanvasHandler struct {
	usecase httpUsecase.ClearCanvasUseCase
}

func NewClearCanvasHandler(usecase httpUsecase.ClearCanvasUseCase) *ClearCanvasHandler {
	return &ClearCanvasHandler{
		usecase: usecase,
	}
}

func (h *ClearCanvasHandler) Handle(ctx context.Context, req *RoomPlayerRequest) (*SuccessResponse, int, error) {
	status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID)
	if err != nil {
		return nil, status, err
	}
	return &SuccessResponse{Success: true}, status, nil
}

type SkipWordResponse struct {
	Success bool   `json:"success"`
	NewWord string `json:"newWord"`
}

type SkipWordHandler struct {
	usecase httpUsecase.SkipWordUseCase
}

func NewSkipWordHandler(usecase httpUsecase.SkipWordUseCase) *SkipWordHandler {
	return &SkipWordHandler{
		usecase: usecase,
	}
}

func (h *SkipWordHandler) Handle(ctx context.Context, req *RoomPlayerRequest) (*SkipWordResponse, int, error) {
	word, status, err := h.usecase.Execute(ctx, req.RoomID, req.PlayerID)
	if err != nil {
		return nil, status, err
	}
	return &SkipWordResponse{Success: true, NewWord: word}, status, nil
}
