package models

import "github.com/shopspring/decimal"

type SelectedAddOn struct {
	AddOn    AddOn `json:"addOn"`
	Quantity int   `json:"quantity"`
}

// OrderItem is one cart line: a product, its quantity and the add-ons chosen for it.
type OrderItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	AddOns   []SelectedAddOn `json:"addOns"`
}

// Subtotal returns product price × quantity plus each add-on's price × quantity.
func (item OrderItem) Subtotal() float64 {
	return item.subtotal().InexactFloat64()
}

func (item OrderItem) subtotal() decimal.Decimal {
	total := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
	for _, selected := range item.AddOns {
		total = total.Add(decimal.NewFromFloat(selected.AddOn.Price).Mul(decimal.NewFromInt(int64(selected.Quantity))))
	}
	return total
}

// Clone returns a copy that shares no slices with item.
func (item OrderItem) Clone() OrderItem {
	clone := item
	if item.AddOns != nil {
		clone.AddOns = make([]SelectedAddOn, len(item.AddOns))
		copy(clone.AddOns, item.AddOns)
	}
	return clone
}

// ItemsTotal sums the subtotals of items without rounding.
func ItemsTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.subtotal())
	}
	return total.InexactFloat64()
}

// CloneItems deep-copies a list of cart lines.
func CloneItems(items []OrderItem) []OrderItem {
	clones := make([]OrderItem, len(items))
	for i, item := range items {
		clones[i] = item.Clone()
	}
	return clones
}
