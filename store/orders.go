package store

import "github.com/Kariqs/bites-api/models"

// PlaceOrder turns the cart into a pending order, clears the cart and returns
// the new order's id. The total is fixed here and never recomputed.
func (s *Store) PlaceOrder(method models.PaymentMethod) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeOrder(method).ID
}

// Checkout pays for the cart in one step: the cart becomes a pending order
// and its receipt is recorded. An empty cart returns ErrEmptyOrder and
// changes nothing.
func (s *Store) Checkout(method models.PaymentMethod) (models.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.currentOrder) == 0 {
		return models.Receipt{}, ErrEmptyOrder
	}
	return cloneReceipt(s.recordReceipt(s.placeOrder(method))), nil
}

func (s *Store) placeOrder(method models.PaymentMethod) *models.Order {
	order := &models.Order{
		ID:            s.newID("order"),
		Items:         models.CloneItems(s.currentOrder),
		Total:         models.ItemsTotal(s.currentOrder),
		Status:        models.StatusPending,
		PaymentMethod: method,
		Timestamp:     s.now(),
	}
	s.orders = append(s.orders, order)
	s.currentOrder = nil
	return order
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o.Clone())
	}
	return orders
}

// OrdersByStatus lists active orders with the given status in placement order.
func (s *Store) OrdersByStatus(status models.OrderStatus) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, o := range s.orders {
		if o.Status == status {
			orders = append(orders, o.Clone())
		}
	}
	return orders
}

func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.findOrder(id); o != nil {
		return o.Clone(), true
	}
	return models.Order{}, false
}

func (s *Store) findOrder(id string) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// AcceptOrder moves a pending order to accepted. Accepting an accepted order
// changes nothing. It returns false only when no active order has the id.
func (s *Store) AcceptOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrder(id)
	if o == nil {
		return false
	}
	if o.Status == models.StatusPending {
		o.Status = models.StatusAccepted
	}
	return true
}

// CompleteOrder marks the order completed and drops it from the active
// orders. Receipts already generated for it still see the completed record.
func (s *Store) CompleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			o.Status = models.StatusCompleted
			s.orders = append(s.orders[:i:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}
