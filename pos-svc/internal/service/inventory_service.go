package service

import (
	"overcooked-pos/pos-svc/internal/domain"
	"overcooked-pos/pos-svc/internal/store"
)

type InventoryService struct {
	store *store.Store
}

func NewInventoryService(s *store.Store) *InventoryService {
	return &InventoryService{store: s}
}

func (s *InventoryService) List() []domain.InventoryItem {
	return s.store.Inventory()
}

func (s *InventoryService) Get(id string) (domain.InventoryItem, error) {
	item, ok := s.store.InventoryItem(id)
	if !ok {
		return domain.InventoryItem{}, store.ErrItemNotFound
	}
	return item, nil
}

func (s *InventoryService) Replace(items []domain.InventoryItem) error {
	for i := range items {
		if items[i].ID == "" {
			return ErrMissingID
		}
		if items[i].Class == "" {
			items[i].Class = domain.ClassNonKitchen
		}
	}
	return s.store.UpdateInventory(items)
}

func (s *InventoryService) Add(item domain.InventoryItem) (domain.InventoryItem, error) {
	if item.Name == "" {
		return domain.InventoryItem{}, ErrMissingName
	}
	if item.Price.IsNegative() {
		return domain.InventoryItem{}, ErrNegativePrice
	}
	return s.store.AddInventoryItem(item)
}

func (s *InventoryService) Delete(id string) error {
	return s.store.DeleteInventoryItem(id)
}

func (s *InventoryService) Decrease(id string, qty int) error {
	return s.store.DecreaseInventory(id, qty)
}

func (s *InventoryService) LowStock() []domain.InventoryItem {
	return s.store.LowStock()
}
