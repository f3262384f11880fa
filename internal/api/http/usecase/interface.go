package httpUsecase

import (
	"quickdraw-service/domain"
	"quickdraw-service/internal/api/game"
)

type RoomRegistry interface {
	Create(settings domain.Settings) (*game.Room, domain.Seat, error)
	Join(code string) (*game.Room, domain.Seat, error)
	Get(roomID string) (*game.Room, error)
}

// RoomHost lends a newly created room its broadcast sink.
type RoomHost interface {
	Host(roomID string)
}
