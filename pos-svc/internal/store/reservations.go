package store

import (
	"overcooked-pos/pos-svc/internal/domain"
)

func (s *Store) Reservations() []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		out = append(out, copyReservation(res))
	}
	return out
}

func (s *Store) Reservation(id string) (domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res := s.findReservation(id); res != nil {
		return copyReservation(res), true
	}
	return domain.Reservation{}, false
}

// AddReservation books a new pending reservation without a table.
func (s *Store) AddReservation(in domain.ReservationInput) domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &domain.Reservation{
		ID:             s.newID(),
		CustomerName:   in.CustomerName,
		PhoneNumber:    in.PhoneNumber,
		NumberOfPeople: in.NumberOfPeople,
		Date:           in.Date,
		Time:           in.Time,
		Notes:          in.Notes,
		Status:         domain.ReservationPending,
	}
	s.reservations = append(s.reservations, res)
	return copyReservation(res)
}

// UpdateReservation edits descriptive fields only; status, table and
// pre-order change through their own operations.
func (s *Store) UpdateReservation(id string, patch domain.ReservationPatch) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return domain.Reservation{}, ErrReservationNotFound
	}
	if patch.CustomerName != nil {
		res.CustomerName = *patch.CustomerName
	}
	if patch.PhoneNumber != nil {
		res.PhoneNumber = *patch.PhoneNumber
	}
	if patch.NumberOfPeople != nil {
		res.NumberOfPeople = *patch.NumberOfPeople
	}
	if patch.Date != nil {
		res.Date = *patch.Date
	}
	if patch.Time != nil {
		res.Time = *patch.Time
	}
	if patch.Notes != nil {
		res.Notes = *patch.Notes
	}
	return copyReservation(res), nil
}

func (s *Store) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, res := range s.reservations {
		if res.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return ErrReservationNotFound
}

// AssignTableToReservation binds a table and confirms the reservation. The
// table must not be held by another live reservation.
func (s *Store) AssignTableToReservation(id, tableID string, tableNumber int) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return domain.Reservation{}, ErrReservationNotFound
	}
	if res.Status != domain.ReservationPending && res.Status != domain.ReservationConfirmed {
		return domain.Reservation{}, ErrInvalidTransition
	}
	if holder := s.liveReservationOn(tableID); holder != nil && holder.ID != id {
		return domain.Reservation{}, ErrTableReserved
	}

	res.TableID = tableID
	res.TableNumber = tableNumber
	res.Status = domain.ReservationConfirmed
	return copyReservation(res), nil
}

// ReservationByTable returns the live reservation holding the table.
func (s *Store) ReservationByTable(tableID string) (domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res := s.liveReservationOn(tableID); res != nil {
		return copyReservation(res), true
	}
	return domain.Reservation{}, false
}

// AddPreOrderToReservation stages items for a guest who has not arrived. Stock
// is neither checked nor deducted here.
func (s *Store) AddPreOrderToReservation(id, itemID string, qty int) (domain.Reservation, error) {
	if qty <= 0 {
		return domain.Reservation{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return domain.Reservation{}, ErrReservationNotFound
	}
	idx := s.itemIndex(itemID)
	if idx < 0 {
		return domain.Reservation{}, ErrItemNotFound
	}
	res.PreOrder = s.mergeLine(res.PreOrder, s.inventory[idx], qty, "preorder-"+id+"-")
	return copyReservation(res), nil
}

// RemovePreOrderItem drops a staged line; an emptied pre-order becomes nil.
func (s *Store) RemovePreOrderItem(id, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return ErrReservationNotFound
	}
	idx := lineIndex(res.PreOrder, lineID)
	if idx < 0 {
		return ErrLineNotFound
	}
	res.PreOrder = append(res.PreOrder[:idx], res.PreOrder[idx+1:]...)
	if len(res.PreOrder) == 0 {
		res.PreOrder = nil
	}
	return nil
}

// ActivateReservationOrder turns the pre-order into the table's live order.
// Stock is checked for every line before anything is deducted.
func (s *Store) ActivateReservationOrder(id string) (domain.TableOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return domain.TableOrder{}, ErrReservationNotFound
	}
	order, err := s.activate(res)
	if err != nil {
		return domain.TableOrder{}, err
	}
	return copyOrder(order), nil
}

// SeatReservation records the guest's arrival. A pending pre-order is
// activated first; if that fails nothing changes.
func (s *Store) SeatReservation(id string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return domain.Reservation{}, ErrReservationNotFound
	}
	if res.Status != domain.ReservationConfirmed {
		return domain.Reservation{}, ErrInvalidTransition
	}
	if len(res.PreOrder) > 0 {
		if _, err := s.activate(res); err != nil {
			return domain.Reservation{}, err
		}
	}
	res.Status = domain.ReservationSeated
	return copyReservation(res), nil
}

// CancelReservation is allowed before the guest is seated. Staged lines are
// dropped with the reservation.
func (s *Store) CancelReservation(id string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findReservation(id)
	if res == nil {
		return domain.Reservation{}, ErrReservationNotFound
	}
	if res.Status != domain.ReservationPending && res.Status != domain.ReservationConfirmed {
		return domain.Reservation{}, ErrInvalidTransition
	}
	res.Status = domain.ReservationCancelled
	return copyReservation(res), nil
}

// activate must be called with s.mu held.
func (s *Store) activate(res *domain.Reservation) (*domain.TableOrder, error) {
	if len(res.PreOrder) == 0 {
		return nil, ErrNoPreOrder
	}
	if res.TableID == "" {
		return nil, ErrNoTableAssigned
	}
	if _, busy := s.tableOrders[res.TableID]; busy {
		return nil, ErrTableOccupied
	}

	// Lines for the same item are merged on staging, so one pass per line is
	// enough to validate the whole pre-order.
	for _, line := range res.PreOrder {
		idx := s.itemIndex(line.InventoryItemID)
		if idx < 0 {
			return nil, ErrItemNotFound
		}
		if s.inventory[idx].Quantity < line.Quantity {
			return nil, ErrInsufficientStock
		}
	}
	for _, line := range res.PreOrder {
		if _, err := s.decrease(line.InventoryItemID, line.Quantity); err != nil {
			// unreachable after the check above
			panic("store: activation deduct failed after validation: " + err.Error())
		}
	}

	order := &domain.TableOrder{
		TableID:     res.TableID,
		TableNumber: res.TableNumber,
		Items:       res.PreOrder,
		Total:       sumLines(res.PreOrder),
		CreatedAt:   s.now(),
		Status:      domain.OrderActive,
	}
	s.tableOrders[res.TableID] = order
	res.PreOrder = nil
	return order, nil
}

func (s *Store) findReservation(id string) *domain.Reservation {
	for _, res := range s.reservations {
		if res.ID == id {
			return res
		}
	}
	return nil
}

func (s *Store) liveReservationOn(tableID string) *domain.Reservation {
	if tableID == "" {
		return nil
	}
	for _, res := range s.reservations {
		if res.TableID == tableID && res.Status.Live() {
			return res
		}
	}
	return nil
}
