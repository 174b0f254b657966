package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gt=0"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category" binding:"required"`
}

type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gt=0"`
}

// MenuCategory groups the products of one category in catalog order.
type MenuCategory struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}
