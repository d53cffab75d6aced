package service

import (
	"strings"

	"overcooked-pos/pos-svc/internal/domain"
	"overcooked-pos/pos-svc/internal/store"
)

type ReservationService struct {
	store *store.Store
}

func NewReservationService(s *store.Store) *ReservationService {
	return &ReservationService{store: s}
}

func (s *ReservationService) List() []domain.Reservation {
	return s.store.Reservations()
}

func (s *ReservationService) Get(id string) (domain.Reservation, error) {
	res, ok := s.store.Reservation(id)
	if !ok {
		return domain.Reservation{}, store.ErrReservationNotFound
	}
	return res, nil
}

func (s *ReservationService) Create(in domain.ReservationInput) (domain.Reservation, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" || in.NumberOfPeople <= 0 {
		return domain.Reservation{}, ErrInvalidReservation
	}
	return s.store.AddReservation(in), nil
}

func (s *ReservationService) Update(id string, patch domain.ReservationPatch) (domain.Reservation, error) {
	if patch.CustomerName != nil && strings.TrimSpace(*patch.CustomerName) == "" {
		return domain.Reservation{}, ErrInvalidReservation
	}
	if patch.NumberOfPeople != nil && *patch.NumberOfPeople <= 0 {
		return domain.Reservation{}, ErrInvalidReservation
	}
	return s.store.UpdateReservation(id, patch)
}

func (s *ReservationService) Delete(id string) error {
	return s.store.DeleteReservation(id)
}

func (s *ReservationService) AssignTable(id, tableID string, tableNumber int) (domain.Reservation, error) {
	if tableID == "" {
		return domain.Reservation{}, ErrMissingTable
	}
	return s.store.AssignTableToReservation(id, tableID, tableNumber)
}

func (s *ReservationService) ByTable(tableID string) (domain.Reservation, error) {
	res, ok := s.store.ReservationByTable(tableID)
	if !ok {
		return domain.Reservation{}, ErrNoReservation
	}
	return res, nil
}

func (s *ReservationService) AddPreOrderItem(id, itemID string, qty int) (domain.Reservation, error) {
	return s.store.AddPreOrderToReservation(id, itemID, qty)
}

func (s *ReservationService) RemovePreOrderItem(id, lineID string) error {
	return s.store.RemovePreOrderItem(id, lineID)
}

func (s *ReservationService) Activate(id string) (domain.TableOrder, error) {
	return s.store.ActivateReservationOrder(id)
}

func (s *ReservationService) Seat(id string) (domain.Reservation, error) {
	return s.store.SeatReservation(id)
}

func (s *ReservationService) Cancel(id string) (domain.Reservation, error) {
	return s.store.CancelReservation(id)
}
