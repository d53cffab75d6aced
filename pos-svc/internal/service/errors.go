package service

import "errors"

var (
	ErrMissingID          = errors.New("inventory item id is required")
	ErrMissingName        = errors.New("name is required")
	ErrMissingTable       = errors.New("table id is required")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidReservation = errors.New("reservation needs a customer name and at least one guest")
	ErrInvalidPeriod      = errors.New("period must be one of today, week, month, all")
	ErrHistoryNotFound    = errors.New("order history entry not found")
	ErrNoReservation      = errors.New("table has no live reservation")
)
