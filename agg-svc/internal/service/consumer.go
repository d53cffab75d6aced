package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"overcooked-pos/agg-svc/internal/domain"
)

const (
	defaultRetryDelay = time.Second
	maxRetryDelay     = 30 * time.Second
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	// RetryDelay is the first pause before retrying a failed order; it doubles
	// up to maxRetryDelay.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads until ctx is cancelled. A message is committed only after it
// was aggregated or found unreadable.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[agg-svc] starting order consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("[agg-svc] ERROR: reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("[agg-svc] ERROR: unmarshaling message at offset %d: %v", message.Offset, err)
		} else if !c.processWithRetry(ctx, msg) {
			log.Println("[agg-svc] consumer stopped")
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("[agg-svc] ERROR: committing offset %d: %v", message.Offset, err)
		}
	}
}

// processWithRetry keeps retrying until the order is aggregated. It returns
// false when ctx is cancelled first.
func (c *Consumer) processWithRetry(ctx context.Context, msg domain.KafkaMessage) bool {
	delay := c.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	for {
		err := c.ProcessOrder(ctx, msg)
		if err == nil {
			return true
		}
		log.Printf("[agg-svc] ERROR: aggregating order %s, retrying in %s: %v", msg.OrderID, delay, err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		if delay *= 2; delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, msg domain.KafkaMessage) error {
	if msg.Type != domain.OrderPaid {
		return nil
	}
	log.Printf("[agg-svc] processing order %s: table=%s items=%d total=%s",
		msg.OrderID, msg.TableID, len(msg.Items), msg.Total.StringFixed(2))

	applied, err := c.Store.ApplyOrder(ctx, msg)
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[agg-svc] WARNING: order %s already counted, skipping", msg.OrderID)
		return nil
	}

	log.Printf("[agg-svc] aggregated order %s", msg.OrderID)
	return nil
}
