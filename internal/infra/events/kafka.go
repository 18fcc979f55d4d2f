package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true, // fire-and-forget, errors surface in Completion
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					slog.Error("failed to publish order events", "count", len(messages), "error", err.Error())
				}
			},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event OrderEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal order event", "type", event.Type, "error", err.Error())
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("failed to enqueue order event", "type", event.Type, "error", err.Error())
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
