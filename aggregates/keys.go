// Package aggregates names the Redis keys shared by the aggregation writer
// and the analytics reader. Every key is scoped to one calendar day (UTC).
package aggregates

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TTL        = 7 * 24 * time.Hour
)

// Hash fields of SummaryKey.
const (
	FieldOrders       = "orders"
	FieldRevenueCents = "revenue_cents"
	FieldLastOrderAt  = "last_order_at"
)

func Day(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ProductRevenueKey is a sorted set of product name by revenue in cents.
func ProductRevenueKey(day string) string {
	return fmt.Sprintf("sales:%s:products:revenue", day)
}

// ProductQuantityKey is a hash of product name to units sold.
func ProductQuantityKey(day string) string {
	return fmt.Sprintf("sales:%s:products:quantity", day)
}

// ProductCategoryKey is a hash of product name to its category.
func ProductCategoryKey(day string) string {
	return fmt.Sprintf("sales:%s:products:category", day)
}

func CategoryRevenueKey(day string) string {
	return fmt.Sprintf("sales:%s:categories:revenue", day)
}

func CategoryQuantityKey(day string) string {
	return fmt.Sprintf("sales:%s:categories:quantity", day)
}

// HourRevenueKey and HourOrdersKey are hashes keyed by hour of day, 0-23.
func HourRevenueKey(day string) string {
	return fmt.Sprintf("sales:%s:hours:revenue", day)
}

func HourOrdersKey(day string) string {
	return fmt.Sprintf("sales:%s:hours:orders", day)
}

func SummaryKey(day string) string {
	return fmt.Sprintf("sales:%s:summary", day)
}

// ProcessedKey marks an order that has already been counted.
func ProcessedKey(orderID string) string {
	return "processed:order:" + orderID
}

// Cents converts money to whole cents for Redis integer counters.
func Cents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
