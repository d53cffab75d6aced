package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"overcooked-pos/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderPaid(ctx context.Context, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msg.Type, err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: payload,
		Time:  msg.Timestamp,
	})
}
