package store

import (
	"overcooked-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultInventory is the catalogue a fresh service starts with.
func DefaultInventory() []domain.InventoryItem {
	item := func(id, name string, qty, minStock int, category, price string, class domain.ItemClass) domain.InventoryItem {
		return domain.InventoryItem{
			ID:       id,
			Name:     name,
			Quantity: qty,
			Unit:     "units",
			MinStock: minStock,
			Category: category,
			Price:    decimal.RequireFromString(price),
			Class:    class,
		}
	}

	return []domain.InventoryItem{
		item("1", "Hamburger", 50, 10, "Food", "12.50", domain.ClassKitchen),
		item("2", "Pizza", 30, 5, "Food", "15.00", domain.ClassKitchen),
		item("3", "Salad", 40, 8, "Food", "8.00", domain.ClassKitchen),
		item("4", "French Fries", 60, 15, "Sides", "5.00", domain.ClassNonKitchen),
		item("5", "Cola", 100, 20, "Drinks", "3.50", domain.ClassNonKitchen),
		item("6", "Water", 80, 15, "Drinks", "2.00", domain.ClassNonKitchen),
		item("7", "Beer", 60, 10, "Drinks", "5.50", domain.ClassNonKitchen),
		item("8", "Pasta", 35, 8, "Food", "13.00", domain.ClassKitchen),
		item("9", "Sushi", 25, 5, "Food", "18.00", domain.ClassKitchen),
	}
}
