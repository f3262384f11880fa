package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"quickdraw-service/domain"
)

type Config struct {
	Brokers      []string
	Topic        string
	ClientID     string
	WriteTimeout time.Duration
	MaxAttempts  int
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher streams room lifecycle events to a topic, keyed by room id so one
// room's events stay ordered within a partition.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: no kafka brokers configured", domain.ErrInvalidInput)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: no kafka topic configured", domain.ErrInvalidInput)
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           cfg.WriteTimeout,
		MaxAttempts:            cfg.MaxAttempts,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Transport:              &kafka.Transport{ClientID: cfg.ClientID},
	}

	logger := zap.L().Named("kafka")
	logger.Info("kafka publisher initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic))

	return newPublisher(writer, cfg.Topic, logger), nil
}

func newPublisher(writer messageWriter, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{writer: writer, topic: topic, logger: logger}
}

func buildMessage(event domain.LifecycleEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode lifecycle event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.RoomID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	}, nil
}

// Record publishes one lifecycle event. Failures are logged and dropped.
func (p *Publisher) Record(ctx context.Context, event domain.LifecycleEvent) {
	msg, err := buildMessage(event)
	if err != nil {
		p.logger.Error("failed to build lifecycle message", zap.String("room_id", event.RoomID), zap.Error(err))
		return
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("failed to publish lifecycle event",
			zap.String("topic", p.topic),
			zap.String("room_id", event.RoomID),
			zap.String("kind", string(event.Kind)),
			zap.Error(err))
		return
	}
	p.logger.Debug("lifecycle event published",
		zap.String("room_id", event.RoomID),
		zap.String("kind", string(event.Kind)))
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
