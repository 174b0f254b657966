package initializers

import (
	"github.com/Kariqs/bites-api/store"
	"go.uber.org/zap"
)

// NewStore builds the application store, seeding the default menu unless
// SEED_CATALOG is false.
func NewStore(cfg Config) *store.Store {
	var opts []store.Option
	if cfg.SeedCatalog {
		opts = append(opts, store.WithCatalog(store.DefaultProducts(), store.DefaultAddOns()))
	}
	s := store.New(cfg.HotelName, opts...)
	zap.S().Infow("store initialized", "hotel", cfg.HotelName, "products", len(s.Products()), "addOns", len(s.AddOns()))
	return s
}
