package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Price bounds for a pizza sold by a restaurant, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza links a restaurant to a pizza and carries the price the restaurant charges for it
type RestaurantPizza struct {
	ID           uint       `gorm:"primaryKey"`
	Price        float64    `gorm:"not null"`
	RestaurantID uint       `gorm:"not null;index"`
	PizzaID      uint       `gorm:"not null;index"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID"`
	Pizza        Pizza      `gorm:"foreignKey:PizzaID"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// PriceRangeMessage is reported whenever a price falls outside [MinPrice, MaxPrice]
var PriceRangeMessage = fmt.Sprintf("price must be between %d and %d", MinPrice, MaxPrice)

// PriceInRange reports whether price lies within [MinPrice, MaxPrice]
func PriceInRange(price float64) bool {
	return price >= MinPrice && price <= MaxPrice
}

// BeforeSave rejects rows with an out of range price or missing references
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	var messages []string
	if rp.RestaurantID == 0 {
		messages = append(messages, "restaurant_id is required")
	}
	if rp.PizzaID == 0 {
		messages = append(messages, "pizza_id is required")
	}
	if !PriceInRange(rp.Price) {
		messages = append(messages, PriceRangeMessage)
	}
	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// RestaurantPizzaView is the JSON shape of an association nested inside a restaurant
type RestaurantPizzaView struct {
	ID           uint      `json:"id"`
	Pizza        PizzaView `json:"pizza"`
	PizzaID      uint      `json:"pizza_id"`
	Price        float64   `json:"price"`
	RestaurantID uint      `json:"restaurant_id"`
}

// RestaurantPizzaDetail is the standalone JSON shape of an association,
// carrying summaries of both endpoints
type RestaurantPizzaDetail struct {
	ID           uint              `json:"id"`
	Pizza        PizzaView         `json:"pizza"`
	PizzaID      uint              `json:"pizza_id"`
	Price        float64           `json:"price"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	RestaurantID uint              `json:"restaurant_id"`
}

// View serializes the association for embedding in a restaurant
func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Pizza:        rp.Pizza.View(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
	}
}

// Detail serializes the association with both endpoints.
// Restaurant and Pizza must be loaded.
func (rp RestaurantPizza) Detail() RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Pizza:        rp.Pizza.View(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		Restaurant:   rp.Restaurant.Summary(),
		RestaurantID: rp.RestaurantID,
	}
}

// RestaurantPizzaDetails serializes a slice of associations, keeping the input order
func RestaurantPizzaDetails(associations []RestaurantPizza) []RestaurantPizzaDetail {
	details := make([]RestaurantPizzaDetail, 0, len(associations))
	for _, rp := range associations {
		details = append(details, rp.Detail())
	}
	return details
}
