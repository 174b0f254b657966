// Package store holds the restaurant's in-memory state: the catalog, the cart
// being assembled, placed orders and the receipts generated for them.
//
// A Store is created explicitly with New and handed to its consumers. Every
// method runs under one mutex, so each operation completes before the next
// begins. Values returned by the store are copies; mutating them has no
// effect on the store.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Kariqs/bites-api/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when an operation references an order that is not
// in the active orders collection.
var ErrNotFound = errors.New("not found")

// ErrEmptyOrder is returned by Checkout when the cart has no lines.
var ErrEmptyOrder = errors.New("order has no items")

type Store struct {
	mu sync.Mutex

	products     []models.Product
	addOns       []models.AddOn
	currentOrder []models.OrderItem
	orders       []*models.Order
	receipts     []*models.Receipt
	hotelName    string

	now   func() time.Time
	newID func(prefix string) string
}

type Option func(*Store)

// WithClock sets the time source used for order timestamps, receipt times and
// the day/month/year boundaries of Stats.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithCatalog seeds the store with products and add-ons.
func WithCatalog(products []models.Product, addOns []models.AddOn) Option {
	return func(s *Store) {
		s.products = append([]models.Product(nil), products...)
		s.addOns = append([]models.AddOn(nil), addOns...)
	}
}

func New(hotelName string, opts ...Option) *Store {
	s := &Store{
		hotelName: hotelName,
		now:       time.Now,
		newID:     newPrefixedID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newPrefixedID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

func (s *Store) HotelName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotelName
}

// SetHotelName changes the name printed on receipts generated from now on.
// Existing receipts keep the name they were generated with.
func (s *Store) SetHotelName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotelName = name
}
