package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"overcooked-pos/pos-svc/internal/domain"
	"overcooked-pos/pos-svc/internal/store"

	"github.com/shopspring/decimal"
)

const OrderPaidEvent = "order_paid"

// AdapterTimeout bounds the archive write and the event publish of one payment.
const AdapterTimeout = 10 * time.Second

type OrderService struct {
	store     *store.Store
	publisher OrderPublisher
	archive   HistoryArchive
	qrEncoder QRGenerator
}

// NewOrderService wires the table-order operations. publisher, archive and qr
// may be nil; payments then stay in memory only.
func NewOrderService(s *store.Store, publisher OrderPublisher, archive HistoryArchive, qr QRGenerator) *OrderService {
	return &OrderService{
		store:     s,
		publisher: publisher,
		archive:   archive,
		qrEncoder: qr,
	}
}

func (s *OrderService) Snapshot() domain.Snapshot {
	return s.store.Snapshot()
}

func (s *OrderService) TableOrders() map[string]domain.TableOrder {
	return s.store.TableOrders()
}

func (s *OrderService) TableOrder(tableID string) (domain.TableOrder, error) {
	order, ok := s.store.TableOrder(tableID)
	if !ok {
		return domain.TableOrder{}, store.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) TableTotal(tableID string) decimal.Decimal {
	return s.store.TableTotal(tableID)
}

func (s *OrderService) AddItem(tableID string, tableNumber int, itemID string, qty int) (domain.TableOrder, error) {
	return s.store.AddItemToTable(tableID, tableNumber, itemID, qty)
}

func (s *OrderService) RemoveItem(tableID, lineID string) error {
	return s.store.RemoveItemFromTable(tableID, lineID)
}

func (s *OrderService) Clear(tableID string) error {
	return s.store.ClearTableOrder(tableID)
}

func (s *OrderService) MarkReady(tableID string) error {
	return s.store.MarkOrderReadyToPay(tableID)
}

// Pay settles the table in the store, then hands the ticket to the archive
// and the event stream. Adapter failures are logged; the payment stands.
func (s *OrderService) Pay(ctx context.Context, tableID string) (domain.OrderHistoryEntry, error) {
	entry, err := s.store.PayOrder(tableID)
	if err != nil {
		return domain.OrderHistoryEntry{}, err
	}

	// The payment is settled; a client hanging up must not cancel its fan-out.
	adapterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), AdapterTimeout)
	defer cancel()

	if s.archive != nil {
		if err := s.archive.ArchiveOrder(adapterCtx, entry); err != nil {
			log.Printf("[pos-svc] WARNING: failed to archive order %s: %v", entry.ID, err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishOrderPaid(adapterCtx, OrderPaidMessage(entry)); err != nil {
			log.Printf("[pos-svc] WARNING: failed to publish order %s: %v", entry.ID, err)
		}
	}

	log.Printf("[pos-svc] table %s paid, order %s total %s", tableID, entry.ID, entry.Total.StringFixed(2))
	return entry, nil
}

func (s *OrderService) SetKitchenStatus(tableID, lineID string, status domain.KitchenStatus) error {
	return s.store.UpdateKitchenItemStatus(tableID, lineID, status)
}

func (s *OrderService) KitchenQueue() []domain.KitchenTicket {
	return s.store.KitchenQueue()
}

func (s *OrderService) History() []domain.OrderHistoryEntry {
	return s.store.History()
}

func (s *OrderService) HistoryEntry(id string) (domain.OrderHistoryEntry, error) {
	entry, ok := s.store.HistoryEntry(id)
	if !ok {
		return domain.OrderHistoryEntry{}, ErrHistoryNotFound
	}
	return entry, nil
}

// Receipt renders the QR code of a paid order.
func (s *OrderService) Receipt(historyID string) ([]byte, error) {
	if _, ok := s.store.HistoryEntry(historyID); !ok {
		return nil, ErrHistoryNotFound
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("receipt %s: no qr generator configured", historyID)
	}
	return s.qrEncoder.Generate(historyID)
}

func (s *OrderService) ReceiptLink(historyID string) string {
	return fmt.Sprintf("/api/history/%s/qrcode", historyID)
}

// OrderPaidMessage converts a history entry into the event consumed by the
// aggregation service.
func OrderPaidMessage(entry domain.OrderHistoryEntry) domain.KafkaMessage {
	items := make([]domain.SoldItem, 0, len(entry.Items))
	for _, line := range entry.Items {
		items = append(items, domain.SoldItem{
			InventoryItemID: line.InventoryItemID,
			Name:            line.Name,
			Category:        line.Category,
			Quantity:        line.Quantity,
			Total:           line.Total,
		})
	}
	return domain.KafkaMessage{
		Type:        OrderPaidEvent,
		OrderID:     entry.ID,
		TableID:     entry.TableID,
		TableNumber: entry.TableNumber,
		Total:       entry.Total,
		Items:       items,
		Timestamp:   entry.PaidAt,
	}
}
