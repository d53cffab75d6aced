package store

import (
	"overcooked-pos/pos-svc/internal/domain"
)

func (s *Store) Inventory() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *Store) InventoryItem(id string) (domain.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.itemIndex(id); idx >= 0 {
		return s.inventory[idx], true
	}
	return domain.InventoryItem{}, false
}

// LowStock lists items whose quantity fell below their minimum.
func (s *Store) LowStock() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.InventoryItem
	for _, item := range s.inventory {
		if item.LowStock() {
			out = append(out, item)
		}
	}
	return out
}

// DecreaseInventory takes qty units of an item out of stock. It is the only
// path that lowers a quantity.
func (s *Store) DecreaseInventory(itemID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.decrease(itemID, qty)
	return err
}

// UpdateInventory replaces the whole inventory. Stock levels are taken as
// given; only negative quantities and duplicate ids are refused.
func (s *Store) UpdateInventory(items []domain.InventoryItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return ErrNegativeStock
		}
		if _, dup := seen[item.ID]; dup {
			return ErrDuplicateItem
		}
		seen[item.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inventory = make([]domain.InventoryItem, len(items))
	copy(s.inventory, items)
	return nil
}

// AddInventoryItem appends a new item, generating its id when empty.
func (s *Store) AddInventoryItem(item domain.InventoryItem) (domain.InventoryItem, error) {
	if item.Quantity < 0 {
		return domain.InventoryItem{}, ErrNegativeStock
	}
	if item.Class == "" {
		item.Class = domain.ClassNonKitchen
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = s.newID()
	}
	if s.itemIndex(item.ID) >= 0 {
		return domain.InventoryItem{}, ErrDuplicateItem
	}
	s.inventory = append(s.inventory, item)
	return item, nil
}

// DeleteInventoryItem drops an item from the catalogue. Lines already on
// orders keep their copy of name and price.
func (s *Store) DeleteInventoryItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	s.inventory = append(s.inventory[:idx], s.inventory[idx+1:]...)
	return nil
}

func (s *Store) itemIndex(id string) int {
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// decrease must be called with s.mu held.
func (s *Store) decrease(itemID string, qty int) (domain.InventoryItem, error) {
	if qty <= 0 {
		return domain.InventoryItem{}, ErrInvalidQuantity
	}
	idx := s.itemIndex(itemID)
	if idx < 0 {
		return domain.InventoryItem{}, ErrItemNotFound
	}
	if s.inventory[idx].Quantity < qty {
		return domain.InventoryItem{}, ErrInsufficientStock
	}
	s.inventory[idx].Quantity -= qty
	return s.inventory[idx], nil
}

// restock returns qty units to an item. Items deleted in the meantime are
// skipped. Must be called with s.mu held.
func (s *Store) restock(itemID string, qty int) {
	if idx := s.itemIndex(itemID); idx >= 0 {
		s.inventory[idx].Quantity += qty
	}
}
