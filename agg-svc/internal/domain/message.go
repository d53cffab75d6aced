package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderPaid = "order_paid"

// KafkaMessage mirrors the event the POS publishes for each paid order.
type KafkaMessage struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	TableID     string          `json:"table_id"`
	TableNumber int             `json:"table_number"`
	Total       decimal.Decimal `json:"total"`
	Items       []SoldItem      `json:"items"`
	Timestamp   time.Time       `json:"timestamp"`
}

type SoldItem struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Quantity        int             `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
}
