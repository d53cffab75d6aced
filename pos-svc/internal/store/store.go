// Package store holds the in-memory restaurant state: inventory, live table
// orders, paid order history and reservations.
//
// Every exported method runs its whole read-check-write sequence under one
// store-wide lock, so a failed operation never leaves partial changes behind.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"overcooked-pos/pos-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrItemNotFound         = errors.New("inventory item not found")
	ErrDuplicateItem        = errors.New("duplicate inventory item id")
	ErrNegativeStock        = errors.New("stock quantity cannot be negative")
	ErrOrderNotFound        = errors.New("table has no open order")
	ErrLineNotFound         = errors.New("order line not found")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrTableOccupied        = errors.New("table already has an open order")
	ErrNotKitchenItem       = errors.New("line is not routed to the kitchen")
	ErrInvalidKitchenStatus = errors.New("unknown kitchen status")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrTableReserved        = errors.New("table is held by another reservation")
	ErrNoTableAssigned      = errors.New("reservation has no table assigned")
	ErrNoPreOrder           = errors.New("reservation has no pre-order")
	ErrInvalidTransition    = errors.New("reservation status does not allow this operation")
)

// DirectSaleTableID is the lane used for take-away and counter sales.
const DirectSaleTableID = "x"

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator used for lines, reservations and
// history entries.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithInventory seeds the inventory.
func WithInventory(items []domain.InventoryItem) Option {
	return func(s *Store) {
		s.inventory = make([]domain.InventoryItem, len(items))
		copy(s.inventory, items)
	}
}

type Store struct {
	mu sync.Mutex

	inventory    []domain.InventoryItem
	tableOrders  map[string]*domain.TableOrder
	history      []domain.OrderHistoryEntry
	reservations []*domain.Reservation

	now   func() time.Time
	newID func() string
}

func New(opts ...Option) *Store {
	s := &Store{
		tableOrders: make(map[string]*domain.TableOrder),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the whole state. History is newest first.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.Snapshot{
		Inventory:    make([]domain.InventoryItem, len(s.inventory)),
		TableOrders:  make(map[string]domain.TableOrder, len(s.tableOrders)),
		OrderHistory: make([]domain.OrderHistoryEntry, 0, len(s.history)),
		Reservations: make([]domain.Reservation, 0, len(s.reservations)),
	}
	copy(snap.Inventory, s.inventory)
	for id, order := range s.tableOrders {
		snap.TableOrders[id] = copyOrder(order)
	}
	for i := len(s.history) - 1; i >= 0; i-- {
		snap.OrderHistory = append(snap.OrderHistory, copyHistory(s.history[i]))
	}
	for _, res := range s.reservations {
		snap.Reservations = append(snap.Reservations, copyReservation(res))
	}
	return snap
}

// History returns paid orders, newest first.
func (s *Store) History() []domain.OrderHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.OrderHistoryEntry, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		out = append(out, copyHistory(s.history[i]))
	}
	return out
}

func (s *Store) HistoryEntry(id string) (domain.OrderHistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.history {
		if entry.ID == id {
			return copyHistory(entry), true
		}
	}
	return domain.OrderHistoryEntry{}, false
}

// KitchenQueue lists kitchen lines that are not ready yet, oldest order first.
func (s *Store) KitchenQueue() []domain.KitchenTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tickets []domain.KitchenTicket
	for _, order := range s.tableOrders {
		for _, line := range order.Items {
			if line.KitchenStatus == "" || line.KitchenStatus == domain.KitchenReady {
				continue
			}
			tickets = append(tickets, domain.KitchenTicket{
				TableID:     order.TableID,
				TableNumber: order.TableNumber,
				OrderedAt:   order.CreatedAt,
				Line:        line,
			})
		}
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		if tickets[i].OrderedAt.Equal(tickets[j].OrderedAt) {
			return tickets[i].TableID < tickets[j].TableID
		}
		return tickets[i].OrderedAt.Before(tickets[j].OrderedAt)
	})
	return tickets
}

func sumLines(lines []domain.OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return total
}

func lineTotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// mergeLine adds qty of item to lines, combining with an existing line for the
// same inventory item. Merged lines keep the price they were created with.
func (s *Store) mergeLine(lines []domain.OrderLineItem, item domain.InventoryItem, qty int, idPrefix string) []domain.OrderLineItem {
	for i := range lines {
		if lines[i].InventoryItemID == item.ID {
			lines[i].Quantity += qty
			lines[i].Total = lineTotal(lines[i].Price, lines[i].Quantity)
			return lines
		}
	}

	line := domain.OrderLineItem{
		ID:              idPrefix + s.newID(),
		InventoryItemID: item.ID,
		Name:            item.Name,
		Quantity:        qty,
		Price:           item.Price,
		Total:           lineTotal(item.Price, qty),
		Category:        item.Category,
	}
	if item.Class == domain.ClassKitchen {
		line.KitchenStatus = domain.KitchenPending
	}
	return append(lines, line)
}

func copyLines(lines []domain.OrderLineItem) []domain.OrderLineItem {
	if lines == nil {
		return nil
	}
	out := make([]domain.OrderLineItem, len(lines))
	copy(out, lines)
	return out
}

func copyOrder(order *domain.TableOrder) domain.TableOrder {
	out := *order
	out.Items = copyLines(order.Items)
	return out
}

func copyHistory(entry domain.OrderHistoryEntry) domain.OrderHistoryEntry {
	entry.Items = copyLines(entry.Items)
	return entry
}

func copyReservation(res *domain.Reservation) domain.Reservation {
	out := *res
	out.PreOrder = copyLines(res.PreOrder)
	return out
}
