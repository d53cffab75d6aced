package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

type ProductSales struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type CategorySales struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type HourSales struct {
	Hour    int             `json:"hour"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ReservationStats struct {
	Total          int                       `json:"total"`
	ByStatus       map[ReservationStatus]int `json:"by_status"`
	ConversionRate decimal.Decimal           `json:"conversion_rate"`
	AvgPartySize   decimal.Decimal           `json:"avg_party_size"`
}

// Report is computed from a snapshot on every request; nothing is cached.
type Report struct {
	Period         Period           `json:"period"`
	From           time.Time        `json:"from,omitempty"`
	GeneratedAt    time.Time        `json:"generated_at"`
	Revenue        decimal.Decimal  `json:"revenue"`
	Orders         int              `json:"orders"`
	AverageTicket  decimal.Decimal  `json:"average_ticket"`
	TopProducts    []ProductSales   `json:"top_products"`
	Categories     []CategorySales  `json:"categories"`
	Hours          []HourSales      `json:"hours"`
	LowStock       []InventoryItem  `json:"low_stock"`
	OutOfStock     []InventoryItem  `json:"out_of_stock"`
	InventoryValue decimal.Decimal  `json:"inventory_value"`
	Reservations   ReservationStats `json:"reservations"`
}
