package store

import "github.com/Kariqs/bites-api/models"

// NewProductID returns a fresh id for a product created without one.
func (s *Store) NewProductID() string {
	return s.newID("prod")
}

// NewAddOnID returns a fresh id for an add-on created without one.
func (s *Store) NewAddOnID() string {
	return s.newID("addon")
}

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.products...)
}

func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findProduct(id)
}

func (s *Store) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct appends p to the catalog. Id uniqueness is the caller's concern.
func (s *Store) AddProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// UpdateProduct replaces every product whose id matches p.ID and reports
// whether any did.
func (s *Store) UpdateProduct(p models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := false
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			updated = true
		}
	}
	return updated
}

// RemoveProduct drops every product with the given id. Cart lines and placed
// orders keep their own copy of the product.
func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(s.products)
	s.products = kept
	return removed
}

func (s *Store) AddOns() []models.AddOn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AddOn{}, s.addOns...)
}

func (s *Store) AddOn(id string) (models.AddOn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findAddOn(id)
}

func (s *Store) findAddOn(id string) (models.AddOn, bool) {
	for _, a := range s.addOns {
		if a.ID == id {
			return a, true
		}
	}
	return models.AddOn{}, false
}

func (s *Store) AddAddOn(a models.AddOn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addOns = append(s.addOns, a)
}

func (s *Store) UpdateAddOn(a models.AddOn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := false
	for i := range s.addOns {
		if s.addOns[i].ID == a.ID {
			s.addOns[i] = a
			updated = true
		}
	}
	return updated
}

func (s *Store) RemoveAddOn(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.addOns[:0]
	for _, a := range s.addOns {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	removed := len(kept) != len(s.addOns)
	s.addOns = kept
	return removed
}

// Menu groups the catalog by category. Categories appear in the order their
// first product appears; products keep catalog order within a category.
func (s *Store) Menu() []models.MenuCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu := []models.MenuCategory{}
	index := map[string]int{}
	for _, p := range s.products {
		i, ok := index[p.Category]
		if !ok {
			i = len(menu)
			index[p.Category] = i
			menu = append(menu, models.MenuCategory{Category: p.Category})
		}
		menu[i].Products = append(menu[i].Products, p)
	}
	return menu
}
