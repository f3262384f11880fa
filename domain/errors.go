package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

var (
	ErrRoomNotFound   = fmt.Errorf("%w: room not found", ErrNotFound)
	ErrPlayerNotFound = fmt.Errorf("%w: player not found", ErrNotFound)
	ErrRoomFull       = fmt.Errorf("%w: room is full", ErrConflict)
	ErrCodeExhausted  = fmt.Errorf("%w: could not allocate a unique room code", ErrConflict)
	ErrRoundPending   = fmt.Errorf("%w: next round already pending", ErrConflict)
	ErrNotPlaying     = fmt.Errorf("%w: game is not in progress", ErrInvalidState)
	ErrNoActiveWord   = fmt.Errorf("%w: no active word", ErrInvalidState)
	ErrRoundCancelled = fmt.Errorf("%w: round start cancelled", ErrInvalidState)
)
