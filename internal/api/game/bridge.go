package game

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"quickdraw-service/domain"
)

type roomLookup interface {
	Get(roomID string) (*Room, error)
}

type binding struct {
	roomID   string
	playerID string
}

// Bridge ties transport connections to seated players. A connection is admitted
// when its player id is seated in the room; no secret is checked.
type Bridge struct {
	rooms  roomLookup
	mu     sync.Mutex
	conns  map[string]binding
	logger *zap.Logger
}

func NewBridge(rooms roomLookup) *Bridge {
	return &Bridge{
		rooms:  rooms,
		conns:  make(map[string]binding),
		logger: zap.L().Named("bridge"),
	}
}

func (b *Bridge) Authenticate(roomID, playerID string) (*Room, error) {
	room, err := b.rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	if playerID == "" || !room.HasPlayer(playerID) {
		return nil, fmt.Errorf("%w: player %q is not seated in this room", domain.ErrForbidden, playerID)
	}
	return room, nil
}

// Attach binds connID to the player for the lifetime of the connection and marks the player connected.
func (b *Bridge) Attach(connID, roomID, playerID string) error {
	room, err := b.Authenticate(roomID, playerID)
	if err != nil {
		return err
	}
	if err := room.MarkConnected(playerID); err != nil {
		return err
	}

	b.mu.Lock()
	b.conns[connID] = binding{roomID: roomID, playerID: playerID}
	b.mu.Unlock()

	b.logger.Debug("connection attached",
		zap.String("conn_id", connID),
		zap.String("room_id", roomID),
		zap.String("player_id", playerID))
	return nil
}

// Detach drops the binding and disconnects the player unless another live
// connection still carries them or they already left.
func (b *Bridge) Detach(connID string) {
	b.mu.Lock()
	bound, ok := b.conns[connID]
	delete(b.conns, connID)
	stillLive := false
	if ok {
		for _, other := range b.conns {
			if other == bound {
				stillLive = true
				break
			}
		}
	}
	b.mu.Unlock()

	if !ok || stillLive {
		return
	}

	room, err := b.rooms.Get(bound.roomID)
	if err != nil {
		return
	}

	changed, err := room.MarkDisconnected(bound.playerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// seat was reissued to someone else
	case err != nil:
		b.logger.Warn("mark disconnected failed", zap.String("player_id", bound.playerID), zap.Error(err))
	case changed:
		b.logger.Info("player disconnected",
			zap.String("conn_id", connID),
			zap.String("room_id", bound.roomID),
			zap.String("player_id", bound.playerID))
	}
}

func (b *Bridge) PlayerOf(connID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	bound, ok := b.conns[connID]
	return bound.playerID, ok
}

func (b *Bridge) Connections() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.conns)
}
