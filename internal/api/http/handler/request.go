package handler

// RoomPlayerRequest addresses a command at a seated player in a room.
type RoomPlayerRequest struct {
	RoomID   string `params:"room_id" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
}

type RoomRequest struct {
	RoomID string `params:"room_id" validate:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
