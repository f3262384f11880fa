package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisinfra "quickdraw-service/infra/redis"
)

const publishTimeout = 2 * time.Second

// releaseMessage is the relay envelope type that closes a player's connections.
const releaseMessage = "player:released"

func encodeFrame(event string, payload any) ([]byte, error) {
	frame, err := json.Marshal(&Message{Type: event, Content: payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", event, err)
	}
	return frame, nil
}

// localSink delivers straight into this process's connections.
type localSink struct {
	hub    *Hub
	roomID string
}

func (s *localSink) Broadcast(event string, payload any) error {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		return err
	}
	return s.hub.deliver(s.roomID, "", frame)
}

func (s *localSink) SendTo(playerID, event string, payload any) error {
	frame, err := encodeFrame(event, payload)
	if err != nil {
		return err
	}
	return s.hub.deliver(s.roomID, playerID, frame)
}

func (s *localSink) Release(playerID string) error {
	s.hub.releasePlayer(s.roomID, playerID)
	return nil
}

// relaySink publishes to the room channel; the room's subscriber delivers.
// Publishes happen under the room lock, so channel order is commit order.
type relaySink struct {
	bus    RoomBus
	roomID string
}

func (s *relaySink) Broadcast(event string, payload any) error {
	return s.publish("", event, payload)
}

func (s *relaySink) SendTo(playerID, event string, payload any) error {
	return s.publish(playerID, event, payload)
}

// Release goes through the channel too, so every instance drops the player
// after the events published before it.
func (s *relaySink) Release(playerID string) error {
	return s.publish(playerID, releaseMessage, struct{}{})
}

func (s *relaySink) publish(target, event string, payload any) error {
	content, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return s.bus.PublishRoomMessage(ctx, redisinfra.RoomMessage{
		RoomID:    s.roomID,
		Target:    target,
		Type:      event,
		Content:   content,
		Timestamp: time.Now(),
	})
}
