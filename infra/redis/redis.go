package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisManager owns the pub/sub connection used to relay room events.
type RedisManager struct {
	client *redis.Client
}

// RoomMessage is one room event on the room:<id> channel. An empty Target means every
// connection in the room; otherwise only the connections of that player.
type RoomMessage struct {
	RoomID    string          `json:"room_id"`
	Target    string          `json:"target,omitempty"`
	Type      string          `json:"type"`
	Content   json.RawMessage `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewRedisManager(redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", redisAddr, err)
	}

	return &RedisManager{client: rdb}, nil
}

func RoomChannel(roomID string) string {
	return fmt.Sprintf("room:%s", roomID)
}

func (rm *RedisManager) GetRedisClient() *redis.Client {
	return rm.client
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

func (rm *RedisManager) PublishRoomMessage(ctx context.Context, msg RoomMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal room message: %w", err)
	}
	if err := rm.client.Publish(ctx, RoomChannel(msg.RoomID), payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", RoomChannel(msg.RoomID), err)
	}
	return nil
}

// SubscribeRoom returns once the subscription is confirmed, so no message
// published after it returns is missed.
func (rm *RedisManager) SubscribeRoom(ctx context.Context, roomID string) (*redis.PubSub, error) {
	pubsub := rm.client.Subscribe(ctx, RoomChannel(roomID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", RoomChannel(roomID), err)
	}
	return pubsub, nil
}

func DecodeRoomMessage(payload string) (RoomMessage, error) {
	var msg RoomMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return RoomMessage{}, fmt.Errorf("decode room message: %w", err)
	}
	return msg, nil
}
