package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemClass decides whether lines created from an inventory item are tracked
// through the kitchen workflow.
type ItemClass string

const (
	ClassKitchen    ItemClass = "kitchen"
	ClassNonKitchen ItemClass = "non_kitchen"
)

type KitchenStatus string

const (
	KitchenPending   KitchenStatus = "pending"
	KitchenPreparing KitchenStatus = "preparing"
	KitchenReady     KitchenStatus = "ready"
)

func (s KitchenStatus) Valid() bool {
	switch s {
	case KitchenPending, KitchenPreparing, KitchenReady:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderActive     OrderStatus = "active"
	OrderReadyToPay OrderStatus = "ready_to_pay"
	OrderPaid       OrderStatus = "paid"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Live reports whether the reservation still holds its table.
func (s ReservationStatus) Live() bool {
	return s != ReservationCompleted && s != ReservationCancelled
}

type InventoryItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit"`
	MinStock int             `json:"min_stock"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Class    ItemClass       `json:"class"`
}

func (i InventoryItem) LowStock() bool {
	return i.Quantity < i.MinStock
}

type OrderLineItem struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Total           decimal.Decimal `json:"total"`
	Category        string          `json:"category"`
	KitchenStatus   KitchenStatus   `json:"kitchen_status,omitempty"`
}

type TableOrder struct {
	TableID     string          `json:"table_id"`
	TableNumber int             `json:"table_number"`
	Items       []OrderLineItem `json:"items"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      OrderStatus     `json:"status"`
}

type OrderHistoryEntry struct {
	ID          string          `json:"id"`
	TableID     string          `json:"table_id"`
	TableNumber int             `json:"table_number"`
	Items       []OrderLineItem `json:"items"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	PaidAt      time.Time       `json:"paid_at"`
}

type Reservation struct {
	ID             string            `json:"id"`
	CustomerName   string            `json:"customer_name"`
	PhoneNumber    string            `json:"phone_number"`
	NumberOfPeople int               `json:"number_of_people"`
	Date           time.Time         `json:"date"`
	Time           string            `json:"time"`
	TableID        string            `json:"table_id,omitempty"`
	TableNumber    int               `json:"table_number,omitempty"`
	Status         ReservationStatus `json:"status"`
	Notes          string            `json:"notes,omitempty"`
	PreOrder       []OrderLineItem   `json:"pre_order,omitempty"`
}

// ReservationInput carries the caller-supplied fields of a reservation.
type ReservationInput struct {
	CustomerName   string    `json:"customer_name"`
	PhoneNumber    string    `json:"phone_number"`
	NumberOfPeople int       `json:"number_of_people"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	Notes          string    `json:"notes,omitempty"`
}

// ReservationPatch edits the descriptive fields of a reservation. Nil fields
// are left untouched.
type ReservationPatch struct {
	CustomerName   *string    `json:"customer_name,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	NumberOfPeople *int       `json:"number_of_people,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
	Time           *string    `json:"time,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// KitchenTicket is one kitchen line still to be served, with its table.
type KitchenTicket struct {
	TableID     string        `json:"table_id"`
	TableNumber int           `json:"table_number"`
	OrderedAt   time.Time     `json:"ordered_at"`
	Line        OrderLineItem `json:"line"`
}

// Snapshot is a deep copy of the store state handed to readers.
type Snapshot struct {
	Inventory    []InventoryItem       `json:"inventory"`
	TableOrders  map[string]TableOrder `json:"table_orders"`
	OrderHistory []OrderHistoryEntry   `json:"order_history"`
	Reservations []Reservation         `json:"reservations"`
}

// KafkaMessage is published for every paid order.
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
