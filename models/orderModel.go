package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusCompleted OrderStatus = "completed"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

type Order struct {
	ID            string        `json:"id"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	clone := o
	clone.Items = CloneItems(o.Items)
	return clone
}
