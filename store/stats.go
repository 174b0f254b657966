package store

import (
	"sort"
	"time"

	"github.com/Kariqs/bites-api/models"
	"github.com/shopspring/decimal"
)

const topSellersLimit = 5

// Stats aggregates the receipts. Earnings and top sellers only count receipts
// whose order has left the pending state; TotalOrdersToday counts every
// receipt generated since local midnight. Top sellers are joined to the
// current catalog, so deleted products and add-ons drop out. Equal sales are
// ordered by id.
func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	daily, monthly, yearly := decimal.Zero, decimal.Zero, decimal.Zero
	productSales := map[string]int{}
	addOnSales := map[string]int{}
	stats := models.Stats{
		TopProducts: []models.ProductSales{},
		TopAddOns:   []models.AddOnSales{},
	}

	for _, r := range s.receipts {
		if !r.GeneratedAt.Before(startOfDay) {
			stats.TotalOrdersToday++
		}
		if r.Order.Status == models.StatusPending {
			continue
		}

		total := decimal.NewFromFloat(r.Order.Total)
		if !r.GeneratedAt.Before(startOfDay) {
			daily = daily.Add(total)
		}
		if !r.GeneratedAt.Before(startOfMonth) {
			monthly = monthly.Add(total)
		}
		if !r.GeneratedAt.Before(startOfYear) {
			yearly = yearly.Add(total)
		}

		for _, item := range r.Order.Items {
			productSales[item.Product.ID] += item.Quantity
			for _, selected := range item.AddOns {
				addOnSales[selected.AddOn.ID] += selected.Quantity
			}
		}
	}

	stats.DailyEarnings = daily.InexactFloat64()
	stats.MonthlyEarnings = monthly.InexactFloat64()
	stats.YearlyEarnings = yearly.InexactFloat64()

	for id, sales := range productSales {
		if p, ok := s.findProduct(id); ok {
			stats.TopProducts = append(stats.TopProducts, models.ProductSales{Product: p, Sales: sales})
		}
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		a, b := stats.TopProducts[i], stats.TopProducts[j]
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return a.Product.ID < b.Product.ID
	})
	if len(stats.TopProducts) > topSellersLimit {
		stats.TopProducts = stats.TopProducts[:topSellersLimit]
	}

	for id, sales := range addOnSales {
		if a, ok := s.findAddOn(id); ok {
			stats.TopAddOns = append(stats.TopAddOns, models.AddOnSales{AddOn: a, Sales: sales})
		}
	}
	sort.Slice(stats.TopAddOns, func(i, j int) bool {
		a, b := stats.TopAddOns[i], stats.TopAddOns[j]
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return a.AddOn.ID < b.AddOn.ID
	})
	if len(stats.TopAddOns) > topSellersLimit {
		stats.TopAddOns = stats.TopAddOns[:topSellersLimit]
	}

	return stats
}
