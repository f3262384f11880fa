package hub

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	redisinfra "quickdraw-service/infra/redis"
)

// RoomBus is the redis pub/sub surface used to relay room events.
type RoomBus interface {
	PublishRoomMessage(ctx context.Context, msg redisinfra.RoomMessage) error
	SubscribeRoom(ctx context.Context, roomID string) (*redis.PubSub, error)
}

// roomHub keeps one redis subscription per hosted room and hands what arrives
// to the hub's local connections.
type roomHub struct {
	bus         RoomBus
	hub         *Hub
	subscribers map[string]*redis.PubSub
	mutex       sync.Mutex
	logger      *zap.Logger
}

func newRoomHub(bus RoomBus, hub *Hub) *roomHub {
	return &roomHub{
		bus:         bus,
		hub:         hub,
		subscribers: make(map[string]*redis.PubSub),
		logger:      zap.L().Named("room_hub"),
	}
}

// StartSubscriber returns once the subscription is live.
func (rm *roomHub) StartSubscriber(roomID string) error {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	if _, ok := rm.subscribers[roomID]; ok {
		return nil
	}

	pubsub, err := rm.bus.SubscribeRoom(context.Background(), roomID)
	if err != nil {
		return err
	}
	rm.subscribers[roomID] = pubsub

	go func() {
		channel := redisinfra.RoomChannel(roomID)
		rm.logger.Debug("subscribed", zap.String("channel", channel))
		for msg := range pubsub.Channel() {
			rm.handleRedisMessage(roomID, msg.Payload)
		}
		rm.logger.Debug("unsubscribed", zap.String("channel", channel))
	}()
	return nil
}

func (rm *roomHub) StopSubscriber(roomID string) {
	rm.mutex.Lock()
	pubsub, ok := rm.subscribers[roomID]
	delete(rm.subscribers, roomID)
	rm.mutex.Unlock()

	if ok {
		if err := pubsub.Close(); err != nil {
			rm.logger.Debug("closing subscription", zap.String("room_id", roomID), zap.Error(err))
		}
	}
}

func (rm *roomHub) StopAll() {
	rm.mutex.Lock()
	ids := make([]string, 0, len(rm.subscribers))
	for id := range rm.subscribers {
		ids = append(ids, id)
	}
	rm.mutex.Unlock()

	for _, id := range ids {
		rm.StopSubscriber(id)
	}
}

func (rm *roomHub) handleRedisMessage(roomID, payload string) {
	msg, err := redisinfra.DecodeRoomMessage(payload)
	if err != nil {
		rm.logger.Warn("dropping undecodable room message", zap.String("room_id", roomID), zap.Error(err))
		return
	}
	if msg.RoomID != roomID {
		rm.logger.Warn("room message on the wrong channel",
			zap.String("room_id", roomID),
			zap.String("message_room_id", msg.RoomID))
		return
	}

	if msg.Type == releaseMessage {
		rm.hub.releasePlayer(roomID, msg.Target)
		return
	}

	frame, err := encodeFrame(msg.Type, msg.Content)
	if err != nil {
		rm.logger.Warn("dropping room message", zap.String("room_id", roomID), zap.Error(err))
		return
	}
	if err := rm.hub.deliver(roomID, msg.Target, frame); err != nil {
		rm.logger.Warn("relay delivery incomplete",
			zap.String("room_id", roomID),
			zap.String("event", msg.Type),
			zap.Error(err))
	}
}
