package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"overcooked-pos/agg-svc/internal/domain"
	"overcooked-pos/aggregates"

	"github.com/redis/go-redis/v9"
)

const maxWatchRetries = 5

var ErrWrongKeyType = errors.New("aggregate key holds the wrong type")

// Store keeps per-day sales aggregates in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

type typedKey struct {
	name string
	kind string
}

func dayKeys(day string) []typedKey {
	return []typedKey{
		{aggregates.ProductRevenueKey(day), "zset"},
		{aggregates.ProductQuantityKey(day), "hash"},
		{aggregates.ProductCategoryKey(day), "hash"},
		{aggregates.CategoryRevenueKey(day), "hash"},
		{aggregates.CategoryQuantityKey(day), "hash"},
		{aggregates.HourRevenueKey(day), "hash"},
		{aggregates.HourOrdersKey(day), "hash"},
		{aggregates.SummaryKey(day), "hash"},
	}
}

// ApplyOrder counts a paid order exactly once. The processed marker and every
// increment commit in one MULTI under WATCH, so either all of them land or
// none do. It reports false when the order was already counted.
func (s *Store) ApplyOrder(ctx context.Context, msg domain.KafkaMessage) (bool, error) {
	day := aggregates.Day(msg.Timestamp)
	marker := aggregates.ProcessedKey(msg.OrderID)
	keys := dayKeys(day)

	watched := []string{marker}
	for _, k := range keys {
		watched = append(watched, k.name)
	}

	var applied bool
	txf := func(tx *redis.Tx) error {
		applied = false
		seen, err := tx.Exists(ctx, marker).Result()
		if err != nil {
			return err
		}
		if seen > 0 {
			return nil
		}
		// EXEC does not roll back a failed command, so bad keys are refused up front.
		for _, k := range keys {
			kind, err := tx.Type(ctx, k.name).Result()
			if err != nil {
				return err
			}
			if kind != "none" && kind != k.kind {
				return fmt.Errorf("%w: %s is a %s, want %s", ErrWrongKeyType, k.name, kind, k.kind)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, marker, "1", aggregates.TTL)
			queueProductSales(ctx, pipe, day, msg)
			queueTimeSeries(ctx, pipe, day, msg)
			for _, k := range keys {
				pipe.Expire(ctx, k.name, aggregates.TTL)
			}
			return nil
		})
		if err != nil {
			return err
		}
		applied = true
		return nil
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.rdb.Watch(ctx, txf, watched...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("apply order %s: %w", msg.OrderID, err)
		}
		return applied, nil
	}
	return false, fmt.Errorf("apply order %s: %w", msg.OrderID, redis.TxFailedErr)
}

func queueProductSales(ctx context.Context, pipe redis.Pipeliner, day string, msg domain.KafkaMessage) {
	for _, item := range msg.Items {
		pipe.ZIncrBy(ctx, aggregates.ProductRevenueKey(day), float64(aggregates.Cents(item.Total)), item.Name)
		pipe.HIncrBy(ctx, aggregates.ProductQuantityKey(day), item.Name, int64(item.Quantity))
		pipe.HSet(ctx, aggregates.ProductCategoryKey(day), item.Name, item.Category)
	}
}

func queueTimeSeries(ctx context.Context, pipe redis.Pipeliner, day string, msg domain.KafkaMessage) {
	hour := strconv.Itoa(msg.Timestamp.UTC().Hour())
	for _, item := range msg.Items {
		pipe.HIncrBy(ctx, aggregates.CategoryRevenueKey(day), item.Category, aggregates.Cents(item.Total))
		pipe.HIncrBy(ctx, aggregates.CategoryQuantityKey(day), item.Category, int64(item.Quantity))
	}
	pipe.HIncrBy(ctx, aggregates.HourRevenueKey(day), hour, aggregates.Cents(msg.Total))
	pipe.HIncrBy(ctx, aggregates.HourOrdersKey(day), hour, 1)
	pipe.HIncrBy(ctx, aggregates.SummaryKey(day), aggregates.FieldOrders, 1)
	pipe.HIncrBy(ctx, aggregates.SummaryKey(day), aggregates.FieldRevenueCents, aggregates.Cents(msg.Total))
	pipe.HSet(ctx, aggregates.SummaryKey(day), aggregates.FieldLastOrderAt, msg.Timestamp.Unix())
}
