package store

import "github.com/Kariqs/bites-api/models"

func (s *Store) CurrentOrder() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneItems(s.currentOrder)
}

// AddToOrder appends a new cart line. Identical lines are not merged.
func (s *Store) AddToOrder(item models.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrder = append(s.currentOrder, item.Clone())
}

// UpdateOrderItem replaces the line at index. An out-of-range index leaves
// the cart unchanged and returns false.
func (s *Store) UpdateOrderItem(index int, item models.OrderItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.currentOrder) {
		return false
	}
	s.currentOrder[index] = item.Clone()
	return true
}

func (s *Store) RemoveFromOrder(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.currentOrder) {
		return false
	}
	s.currentOrder = append(s.currentOrder[:index:index], s.currentOrder[index+1:]...)
	return true
}

func (s *Store) ClearOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrder = nil
}

// OrderTotal sums every cart line's subtotal. Nothing is rounded.
func (s *Store) OrderTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ItemsTotal(s.currentOrder)
}
