package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"overcooked-pos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	seq := 0
	return New(
		WithInventory(DefaultInventory()),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id%d", seq)
		}),
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func quantityOf(t *testing.T, s *Store, itemID string) int {
	t.Helper()
	item, ok := s.InventoryItem(itemID)
	require.True(t, ok, "item %s missing", itemID)
	return item.Quantity
}

// checkInvariants asserts the standing rules over a full snapshot.
func checkInvariants(t *testing.T, s *Store) {
	t.Helper()
	snap := s.Snapshot()

	for _, item := range snap.Inventory {
		assert.GreaterOrEqual(t, item.Quantity, 0, "negative stock for %s", item.ID)
	}

	checkLines := func(owner string, lines []domain.OrderLineItem, total decimal.Decimal) {
		sum := decimal.Zero
		for _, line := range lines {
			want := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			assert.True(t, line.Total.Equal(want), "%s line %s total %s != %s", owner, line.ID, line.Total, want)
			sum = sum.Add(line.Total)
		}
		assert.True(t, total.Equal(sum), "%s total %s != %s", owner, total, sum)
	}

	for id, order := range snap.TableOrders {
		assert.Equal(t, id, order.TableID)
		assert.NotEmpty(t, order.Items, "live order %s is empty", id)
		checkLines("table "+id, order.Items, order.Total)
	}
	for _, entry := range snap.OrderHistory {
		checkLines("history "+entry.ID, entry.Items, entry.Total)
	}

	liveTables := map[string]string{}
	for _, res := range snap.Reservations {
		if res.PreOrder != nil {
			assert.NotEmpty(t, res.PreOrder, "reservation %s keeps an empty pre-order", res.ID)
			checkLines("pre-order "+res.ID, res.PreOrder, sumLines(res.PreOrder))
		}
		if res.TableID == "" || !res.Status.Live() {
			continue
		}
		other, taken := liveTables[res.TableID]
		assert.False(t, taken, "table %s held by %s and %s", res.TableID, other, res.ID)
		liveTables[res.TableID] = res.ID
	}
}

func TestDecreaseInventory(t *testing.T) {
	tests := []struct {
		name    string
		itemID  string
		qty     int
		wantErr error
		wantQty int
	}{
		{name: "enough stock", itemID: "5", qty: 10, wantQty: 90},
		{name: "exact stock", itemID: "9", qty: 25, wantQty: 0},
		{name: "insufficient stock", itemID: "9", qty: 26, wantErr: ErrInsufficientStock, wantQty: 25},
		{name: "unknown item", itemID: "404", qty: 1, wantErr: ErrItemNotFound},
		{name: "zero quantity", itemID: "5", qty: 0, wantErr: ErrInvalidQuantity, wantQty: 100},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestStore(t)

			err := s.DecreaseInventory(testCase.itemID, testCase.qty)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if item, ok := s.InventoryItem(testCase.itemID); ok {
				assert.Equal(t, testCase.wantQty, item.Quantity)
			}
			checkInvariants(t, s)
		})
	}
}

func TestDecreaseInventoryFailureLeavesStockUntouched(t *testing.T) {
	s := newTestStore(t)
	before := s.Inventory()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, s.DecreaseInventory("3", 41), ErrInsufficientStock)
	}

	assert.Equal(t, before, s.Inventory())
}

func TestUpdateInventory(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.InventoryItem
		wantErr error
	}{
		{
			name:  "replace",
			items: []domain.InventoryItem{{ID: "a", Name: "Tea", Quantity: 3, Price: dec("1.20")}},
		},
		{
			name:    "negative quantity",
			items:   []domain.InventoryItem{{ID: "a", Quantity: -1}},
			wantErr: ErrNegativeStock,
		},
		{
			name:    "duplicate id",
			items:   []domain.InventoryItem{{ID: "a"}, {ID: "a"}},
			wantErr: ErrDuplicateItem,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestStore(t)
			before := s.Inventory()

			err := s.UpdateInventory(testCase.items)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Equal(t, before, s.Inventory())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.items, s.Inventory())
		})
	}
}

func TestAddAndDeleteInventoryItem(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddInventoryItem(domain.InventoryItem{Name: "Lemonade", Quantity: 12, MinStock: 20, Price: dec("4.00")})
	require.NoError(t, err)
	assert.Equal(t, "id1", added.ID)
	assert.Equal(t, domain.ClassNonKitchen, added.Class)

	_, err = s.AddInventoryItem(domain.InventoryItem{ID: "5"})
	assert.ErrorIs(t, err, ErrDuplicateItem)

	low := s.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "Lemonade", low[0].Name)

	require.NoError(t, s.DeleteInventoryItem(added.ID))
	assert.ErrorIs(t, s.DeleteInventoryItem(added.ID), ErrItemNotFound)
	assert.Len(t, s.Inventory(), 9)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddItemToTable("t1", 1, "1", 2)
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Inventory[0].Quantity = 0
	order := snap.TableOrders["t1"]
	order.Items[0].Quantity = 99

	assert.Equal(t, 48, quantityOf(t, s, "1"))
	live, ok := s.TableOrder("t1")
	require.True(t, ok)
	assert.Equal(t, 2, live.Items[0].Quantity)
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	s := newTestStore(t)
	res := s.AddReservation(domain.ReservationInput{CustomerName: "Ada", NumberOfPeople: 2})
	_, err := s.AssignTableToReservation(res.ID, "t3", 3)
	require.NoError(t, err)

	steps := []func(){
		func() { _, _ = s.AddItemToTable("t1", 1, "1", 5) },
		func() { _, _ = s.AddItemToTable("t1", 1, "5", 7) },
		func() { _, _ = s.AddItemToTable("t2", 2, "9", 30) },
		func() { _, _ = s.AddItemToTable("t2", 2, "9", 20) },
		func() { _, _ = s.AddPreOrderToReservation(res.ID, "9", 10) },
		func() { _, _ = s.ActivateReservationOrder(res.ID) },
		func() { _ = s.MarkOrderReadyToPay("t1") },
		func() { _, _ = s.AddItemToTable("t1", 1, "1", 1) },
		func() { _ = s.ClearTableOrder("t2") },
		func() { _, _ = s.PayOrder("t1") },
		func() { _, _ = s.AddItemToTable(DirectSaleTableID, 0, "7", 3) },
		func() { _, _ = s.PayOrder(DirectSaleTableID) },
		func() { _, _ = s.SeatReservation(res.ID) },
		func() { _, _ = s.PayOrder("t3") },
	}

	for i, step := range steps {
		step()
		t.Run(fmt.Sprintf("after step %d", i), func(t *testing.T) {
			checkInvariants(t, s)
		})
	}
}

// committedQuantity counts units of an item sitting on live orders or paid
// history, i.e. everything that has left stock.
func committedQuantity(snap domain.Snapshot, itemID string) int {
	total := 0
	count := func(lines []domain.OrderLineItem) {
		for _, line := range lines {
			if line.InventoryItemID == itemID {
				total += line.Quantity
			}
		}
	}
	for _, order := range snap.TableOrders {
		count(order.Items)
	}
	for _, entry := range snap.OrderHistory {
		count(entry.Items)
	}
	return total
}

func TestConcurrentAddsNeverOversell(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	added := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddItemToTable("t1", 1, "9", 1)
			if err == nil {
				mu.Lock()
				added++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrInsufficientStock)
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, added)
	assert.Equal(t, 0, quantityOf(t, s, "9"))
	order, ok := s.TableOrder("t1")
	require.True(t, ok)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 25, order.Items[0].Quantity)
	assert.True(t, order.Total.Equal(dec("450")))
	checkInvariants(t, s)
}

func TestConcurrentMixedOperationsConserveStock(t *testing.T) {
	s := newTestStore(t)
	const stock = 25

	var reservations []string
	for i := 0; i < 5; i++ {
		res := s.AddReservation(domain.ReservationInput{CustomerName: fmt.Sprintf("guest %d", i), NumberOfPeople: 2})
		_, err := s.AssignTableToReservation(res.ID, fmt.Sprintf("r%d", i), 10+i)
		require.NoError(t, err)
		_, err = s.AddPreOrderToReservation(res.ID, "9", 3)
		require.NoError(t, err)
		reservations = append(reservations, res.ID)
	}

	allowed := func(err error, targets ...error) {
		if err == nil {
			return
		}
		for _, target := range targets {
			if errors.Is(err, target) {
				return
			}
		}
		t.Errorf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	run := func(n int, op func(i int)) {
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				op(i)
			}(i)
		}
	}

	run(120, func(i int) {
		_, err := s.AddItemToTable(fmt.Sprintf("t%d", i%4), i%4+1, "9", 1+i%2)
		allowed(err, ErrInsufficientStock)
	})
	run(20, func(i int) {
		allowed(s.ClearTableOrder(fmt.Sprintf("t%d", i%4)), ErrOrderNotFound)
	})
	run(12, func(i int) {
		_, err := s.PayOrder(fmt.Sprintf("t%d", i%4))
		allowed(err, ErrOrderNotFound)
	})
	run(len(reservations), func(i int) {
		_, err := s.ActivateReservationOrder(reservations[i])
		allowed(err, ErrInsufficientStock)
	})
	var mu sync.Mutex
	wasted := 0
	run(30, func(i int) {
		err := s.DecreaseInventory("9", 1)
		if err == nil {
			mu.Lock()
			wasted++
			mu.Unlock()
		}
		allowed(err, ErrInsufficientStock)
	})
	wg.Wait()

	snap := s.Snapshot()
	remaining := quantityOf(t, s, "9")
	assert.GreaterOrEqual(t, remaining, 0)
	assert.Equal(t, stock, remaining+committedQuantity(snap, "9")+wasted)

	for _, res := range snap.Reservations {
		if res.PreOrder == nil {
			order, ok := snap.TableOrders[res.TableID]
			require.True(t, ok, "activated reservation %s has no order", res.ID)
			assert.Equal(t, 3, order.Items[0].Quantity)
		}
	}
	checkInvariants(t, s)
}
