package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer wraps a kafka-go writer for booking lifecycle events. A nil
// *Producer is a valid no-op: event publishing is optional and the service
// runs fine without brokers configured.
type Producer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

// NewProducer creates a producer over the given brokers. Topic is set per
// message so one writer serves all event topics.
func NewProducer(brokers []string, log *zap.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{}, // hash by key for per-booking ordering
		RequiredAcks: kafka.RequireOne,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf("kafka: "+msg, args...))
		}),
	}

	return &Producer{
		writer: writer,
		log:    log.With(zap.String("component", "kafka_producer")),
	}, nil
}

// PublishJSON marshals value and writes it to topic under key. Errors are
// returned for the caller to log; publishing never blocks a request path
// beyond the write itself.
func (p *Producer) PublishJSON(ctx context.Context, topic, key string, value any) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write event to %s: %w", topic, err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
