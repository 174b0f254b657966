package models

import "time"

type Receipt struct {
	ID          string    `json:"id"`
	Order       *Order    `json:"order"`
	HotelName   string    `json:"hotelName"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type ProductSales struct {
	Product Product `json:"product"`
	Sales   int     `json:"sales"`
}

type AddOnSales struct {
	AddOn AddOn `json:"addOn"`
	Sales int   `json:"sales"`
}

type Stats struct {
	DailyEarnings    float64        `json:"dailyEarnings"`
	MonthlyEarnings  float64        `json:"monthlyEarnings"`
	YearlyEarnings   float64        `json:"yearlyEarnings"`
	TotalOrdersToday int            `json:"totalOrdersToday"`
	TopProducts      []ProductSales `json:"topProducts"`
	TopAddOns        []AddOnSales   `json:"topAddOns"`
}
