package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"overcooked-pos/aggregates"
	"overcooked-pos/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type AnalyticsService struct {
	rdb *redis.Client
	now func() time.Time
}

// NewAnalyticsService reads the aggregates written by agg-svc. A nil now
// uses time.Now.
func NewAnalyticsService(rdb *redis.Client, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{rdb: rdb, now: now}
}

func (s *AnalyticsService) day(date string) (string, error) {
	if date == "" {
		return aggregates.Day(s.now()), nil
	}
	if _, err := time.Parse(aggregates.DateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return date, nil
}

func (s *AnalyticsService) TopProducts(ctx context.Context, date string, limit int) ([]domain.ProductStat, error) {
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	ranked, err := s.rdb.ZRevRangeWithScores(ctx, aggregates.ProductRevenueKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("top products %s: %w", day, err)
	}
	if len(ranked) == 0 {
		return []domain.ProductStat{}, nil
	}

	names := make([]string, len(ranked))
	for i, z := range ranked {
		names[i] = z.Member.(string)
	}
	quantities, err := s.rdb.HMGet(ctx, aggregates.ProductQuantityKey(day), names...).Result()
	if err != nil {
		return nil, fmt.Errorf("top products %s: %w", day, err)
	}
	categories, err := s.rdb.HMGet(ctx, aggregates.ProductCategoryKey(day), names...).Result()
	if err != nil {
		return nil, fmt.Errorf("top products %s: %w", day, err)
	}

	products := make([]domain.ProductStat, len(ranked))
	for i, z := range ranked {
		products[i] = domain.ProductStat{
			Name:     names[i],
			Category: asString(categories[i]),
			Quantity: asInt(quantities[i]),
			Revenue:  aggregates.FromCents(int64(z.Score)),
		}
	}
	return products, nil
}

func (s *AnalyticsService) Categories(ctx context.Context, date string) ([]domain.CategoryStat, error) {
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}
	revenue, err := s.rdb.HGetAll(ctx, aggregates.CategoryRevenueKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("categories %s: %w", day, err)
	}
	quantity, err := s.rdb.HGetAll(ctx, aggregates.CategoryQuantityKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("categories %s: %w", day, err)
	}

	stats := make([]domain.CategoryStat, 0, len(revenue))
	for category, cents := range revenue {
		stats = append(stats, domain.CategoryStat{
			Category: category,
			Quantity: asInt(quantity[category]),
			Revenue:  aggregates.FromCents(asInt(cents)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Revenue.Equal(stats[j].Revenue) {
			return stats[i].Revenue.GreaterThan(stats[j].Revenue)
		}
		return stats[i].Category < stats[j].Category
	})
	return stats, nil
}

func (s *AnalyticsService) Hours(ctx context.Context, date string) ([]domain.HourStat, error) {
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}
	revenue, err := s.rdb.HGetAll(ctx, aggregates.HourRevenueKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("hours %s: %w", day, err)
	}
	orders, err := s.rdb.HGetAll(ctx, aggregates.HourOrdersKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("hours %s: %w", day, err)
	}

	stats := make([]domain.HourStat, 0, len(revenue))
	for field, cents := range revenue {
		hour, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		stats = append(stats, domain.HourStat{
			Hour:    hour,
			Orders:  asInt(orders[field]),
			Revenue: aggregates.FromCents(asInt(cents)),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Hour < stats[j].Hour })
	return stats, nil
}

func (s *AnalyticsService) Summary(ctx context.Context, date string) (domain.DailySummary, error) {
	day, err := s.day(date)
	if err != nil {
		return domain.DailySummary{}, err
	}
	fields, err := s.rdb.HGetAll(ctx, aggregates.SummaryKey(day)).Result()
	if err != nil {
		return domain.DailySummary{}, fmt.Errorf("summary %s: %w", day, err)
	}

	summary := domain.DailySummary{
		Date:          day,
		Orders:        asInt(fields[aggregates.FieldOrders]),
		Revenue:       aggregates.FromCents(asInt(fields[aggregates.FieldRevenueCents])),
		AverageTicket: decimal.Zero,
	}
	if summary.Orders > 0 {
		summary.AverageTicket = summary.Revenue.Div(decimal.NewFromInt(summary.Orders)).Round(2)
	}
	if ts := asInt(fields[aggregates.FieldLastOrderAt]); ts > 0 {
		last := time.Unix(ts, 0).UTC()
		summary.LastOrderAt = &last
	}
	return summary, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asInt treats missing or malformed counters as zero.
func asInt(v interface{}) int64 {
	n, _ := strconv.ParseInt(asString(v), 10, 64)
	return n
}
