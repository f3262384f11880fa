package httpUsecase

import (
	"errors"
	"net/http"

	"quickdraw-service/domain"
	"quickdraw-service/internal/api/game"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func lookupRoom(rooms RoomRegistry, roomID string) (*game.Room, int, error) {
	room, err := rooms.Get(roomID)
	if err != nil {
		return nil, statusFor(err), err
	}
	return room, http.StatusOK, nil
}
