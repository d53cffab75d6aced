package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStat struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type CategoryStat struct {
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type HourStat struct {
	Hour    int             `json:"hour"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DailySummary is the day's totals; LastOrderAt is nil before the first sale.
type DailySummary struct {
	Date          string          `json:"date"`
	Orders        int64           `json:"orders"`
	Revenue       decimal.Decimal `json:"revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	LastOrderAt   *time.Time      `json:"last_order_at,omitempty"`
}
