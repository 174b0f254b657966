package store

import "github.com/Kariqs/bites-api/models"

const DefaultHotelName = "Delicious Bites Restaurant"

// DefaultProducts is the menu a fresh installation starts with.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Chicken Biryani", Price: 250, Category: "Main Course", Description: "Aromatic basmati rice with tender chicken"},
		{ID: "2", Name: "Mutton Curry", Price: 300, Category: "Main Course", Description: "Spicy mutton curry with traditional spices"},
		{ID: "3", Name: "Vegetable Pulao", Price: 180, Category: "Main Course", Description: "Fragrant rice with mixed vegetables"},
		{ID: "4", Name: "Dal Tadka", Price: 120, Category: "Dal", Description: "Yellow lentils tempered with spices"},
		{ID: "5", Name: "Paneer Butter Masala", Price: 220, Category: "Vegetarian", Description: "Creamy paneer in rich tomato gravy"},
		{ID: "6", Name: "Chicken Tikka", Price: 280, Category: "Starter", Description: "Grilled chicken marinated in yogurt and spices"},
	}
}

func DefaultAddOns() []models.AddOn {
	return []models.AddOn{
		{ID: "1", Name: "Roti", Price: 15},
		{ID: "2", Name: "Naan", Price: 25},
		{ID: "3", Name: "Rice", Price: 40},
		{ID: "4", Name: "Raita", Price: 30},
		{ID: "5", Name: "Pickle", Price: 10},
		{ID: "6", Name: "Papad", Price: 15},
	}
}
