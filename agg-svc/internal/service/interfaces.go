package service

import (
	"context"

	"overcooked-pos/agg-svc/internal/domain"
	"overcooked-pos/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	ApplyOrder(ctx context.Context, msg domain.KafkaMessage) (bool, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs. Offsets are
// committed explicitly once a message has been handled.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, msg domain.KafkaMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
)
