package store

import (
	"fmt"

	"github.com/Kariqs/bites-api/models"
)

// GenerateReceipt records a receipt for an active order. The order must
// already have been placed; otherwise ErrNotFound is returned and no receipt
// is recorded.
func (s *Store) GenerateReceipt(orderID string) (models.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return models.Receipt{}, fmt.Errorf("order %q: %w", orderID, ErrNotFound)
	}

	return cloneReceipt(s.recordReceipt(order)), nil
}

// ReceiptForOrder returns the receipt already recorded for an active order,
// generating one only if none exists. The bool reports whether a receipt was
// created.
func (s *Store) ReceiptForOrder(orderID string) (models.Receipt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(orderID)
	if order == nil {
		return models.Receipt{}, false, fmt.Errorf("order %q: %w", orderID, ErrNotFound)
	}
	for _, r := range s.receipts {
		if r.Order == order {
			return cloneReceipt(r), false, nil
		}
	}
	return cloneReceipt(s.recordReceipt(order)), true, nil
}

func (s *Store) recordReceipt(order *models.Order) *models.Receipt {
	receipt := &models.Receipt{
		ID:          s.newID("receipt"),
		Order:       order,
		HotelName:   s.hotelName,
		GeneratedAt: s.now(),
	}
	s.receipts = append(s.receipts, receipt)
	return receipt
}

func (s *Store) Receipts() []models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	receipts := make([]models.Receipt, 0, len(s.receipts))
	for _, r := range s.receipts {
		receipts = append(receipts, cloneReceipt(r))
	}
	return receipts
}

func (s *Store) Receipt(id string) (models.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.receipts {
		if r.ID == id {
			return cloneReceipt(r), true
		}
	}
	return models.Receipt{}, false
}

func cloneReceipt(r *models.Receipt) models.Receipt {
	clone := *r
	order := r.Order.Clone()
	clone.Order = &order
	return clone
}
