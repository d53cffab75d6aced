package store

import (
	"overcooked-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func (s *Store) TableOrders() map[string]domain.TableOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.TableOrder, len(s.tableOrders))
	for id, order := range s.tableOrders {
		out[id] = copyOrder(order)
	}
	return out
}

func (s *Store) TableOrder(tableID string) (domain.TableOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.tableOrders[tableID]
	if !ok {
		return domain.TableOrder{}, false
	}
	return copyOrder(order), true
}

// TableTotal returns the open order's total, or zero when the table is free.
func (s *Store) TableTotal(tableID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order, ok := s.tableOrders[tableID]; ok {
		return order.Total
	}
	return decimal.Zero
}

// AddItemToTable takes qty units of an inventory item out of stock and puts
// them on the table's order, opening the order if needed.
func (s *Store) AddItemToTable(tableID string, tableNumber int, itemID string, qty int) (domain.TableOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.decrease(itemID, qty)
	if err != nil {
		return domain.TableOrder{}, err
	}

	order, ok := s.tableOrders[tableID]
	if !ok {
		order = &domain.TableOrder{
			TableID:     tableID,
			TableNumber: tableNumber,
			CreatedAt:   s.now(),
			Status:      domain.OrderActive,
		}
		s.tableOrders[tableID] = order
	}
	order.Items = s.mergeLine(order.Items, item, qty, tableID+"-")
	order.Total = sumLines(order.Items)
	return copyOrder(order), nil
}

// RemoveItemFromTable drops one line and returns its quantity to stock. The
// order disappears with its last line.
func (s *Store) RemoveItemFromTable(tableID, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.tableOrders[tableID]
	if !ok {
		return ErrOrderNotFound
	}
	idx := lineIndex(order.Items, lineID)
	if idx < 0 {
		return ErrLineNotFound
	}

	line := order.Items[idx]
	s.restock(line.InventoryItemID, line.Quantity)
	order.Items = append(order.Items[:idx], order.Items[idx+1:]...)
	if len(order.Items) == 0 {
		delete(s.tableOrders, tableID)
		return nil
	}
	order.Total = sumLines(order.Items)
	return nil
}

// ClearTableOrder cancels the whole order, returning every line to stock.
func (s *Store) ClearTableOrder(tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.tableOrders[tableID]
	if !ok {
		return ErrOrderNotFound
	}
	for _, line := range order.Items {
		s.restock(line.InventoryItemID, line.Quantity)
	}
	delete(s.tableOrders, tableID)
	return nil
}

func (s *Store) MarkOrderReadyToPay(tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.tableOrders[tableID]
	if !ok {
		return ErrOrderNotFound
	}
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}
	order.Status = domain.OrderReadyToPay
	return nil
}

// PayOrder settles the table's order whatever its status. Stock stays
// deducted. A seated reservation on the table is completed.
func (s *Store) PayOrder(tableID string) (domain.OrderHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.tableOrders[tableID]
	if !ok {
		return domain.OrderHistoryEntry{}, ErrOrderNotFound
	}
	if len(order.Items) == 0 {
		return domain.OrderHistoryEntry{}, ErrEmptyOrder
	}

	entry := domain.OrderHistoryEntry{
		ID:          s.newID(),
		TableID:     order.TableID,
		TableNumber: order.TableNumber,
		Items:       copyLines(order.Items),
		Total:       sumLines(order.Items),
		CreatedAt:   order.CreatedAt,
		PaidAt:      s.now(),
	}
	s.history = append(s.history, entry)
	delete(s.tableOrders, tableID)

	for _, res := range s.reservations {
		if res.TableID == tableID && res.Status == domain.ReservationSeated {
			res.Status = domain.ReservationCompleted
		}
	}
	return copyHistory(entry), nil
}

// UpdateKitchenItemStatus moves a kitchen line through pending, preparing and
// ready.
func (s *Store) UpdateKitchenItemStatus(tableID, lineID string, status domain.KitchenStatus) error {
	if !status.Valid() {
		return ErrInvalidKitchenStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.tableOrders[tableID]
	if !ok {
		return ErrOrderNotFound
	}
	idx := lineIndex(order.Items, lineID)
	if idx < 0 {
		return ErrLineNotFound
	}
	if order.Items[idx].KitchenStatus == "" {
		return ErrNotKitchenItem
	}
	order.Items[idx].KitchenStatus = status
	return nil
}

func lineIndex(lines []domain.OrderLineItem, lineID string) int {
	for i := range lines {
		if lines[i].ID == lineID {
			return i
		}
	}
	return -1
}
