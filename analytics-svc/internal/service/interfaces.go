package service

import (
	"context"

	"overcooked-pos/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopProducts(ctx context.Context, date string, limit int) ([]domain.ProductStat, error)
	Categories(ctx context.Context, date string) ([]domain.CategoryStat, error)
	Hours(ctx context.Context, date string) ([]domain.HourStat, error)
	Summary(ctx context.Context, date string) (domain.DailySummary, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
