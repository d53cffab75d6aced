package service

import (
	"context"

	"overcooked-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type InventoryServiceInterface interface {
	List() []domain.InventoryItem
	Get(id string) (domain.InventoryItem, error)
	Replace(items []domain.InventoryItem) error
	Add(item domain.InventoryItem) (domain.InventoryItem, error)
	Delete(id string) error
	Decrease(id string, qty int) error
	LowStock() []domain.InventoryItem
}

type OrderServiceInterface interface {
	Snapshot() domain.Snapshot
	TableOrders() map[string]domain.TableOrder
	TableOrder(tableID string) (domain.TableOrder, error)
	TableTotal(tableID string) decimal.Decimal
	AddItem(tableID string, tableNumber int, itemID string, qty int) (domain.TableOrder, error)
	RemoveItem(tableID, lineID string) error
	Clear(tableID string) error
	MarkReady(tableID string) error
	Pay(ctx context.Context, tableID string) (domain.OrderHistoryEntry, error)
	SetKitchenStatus(tableID, lineID string, status domain.KitchenStatus) error
	KitchenQueue() []domain.KitchenTicket
	History() []domain.OrderHistoryEntry
	HistoryEntry(id string) (domain.OrderHistoryEntry, error)
	Receipt(historyID string) ([]byte, error)
	ReceiptLink(historyID string) string
}

type ReservationServiceInterface interface {
	List() []domain.Reservation
	Get(id string) (domain.Reservation, error)
	Create(in domain.ReservationInput) (domain.Reservation, error)
	Update(id string, patch domain.ReservationPatch) (domain.Reservation, error)
	Delete(id string) error
	AssignTable(id, tableID string, tableNumber int) (domain.Reservation, error)
	ByTable(tableID string) (domain.Reservation, error)
	AddPreOrderItem(id, itemID string, qty int) (domain.Reservation, error)
	RemovePreOrderItem(id, lineID string) error
	Activate(id string) (domain.TableOrder, error)
	Seat(id string) (domain.Reservation, error)
	Cancel(id string) (domain.Reservation, error)
}

type ReportServiceInterface interface {
	Report(period domain.Period) (domain.Report, error)
}

// OrderPublisher ships paid orders to the aggregation pipeline.
type OrderPublisher interface {
	PublishOrderPaid(ctx context.Context, msg domain.KafkaMessage) error
}

// HistoryArchive receives a copy of every paid order. It is write-only.
type HistoryArchive interface {
	ArchiveOrder(ctx context.Context, entry domain.OrderHistoryEntry) error
}

type QRGenerator interface {
	Generate(historyID string) ([]byte, error)
}

var (
	_ InventoryServiceInterface   = (*InventoryService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ ReportServiceInterface      = (*ReportService)(nil)
)
