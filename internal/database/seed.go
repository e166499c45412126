package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the database when the pizzas table has no rows.
// It reports whether seeding happened.
func SeedIfEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting pizzas: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	if err := Seed(db); err != nil {
		return false, err
	}
	return true, nil
}

// Seed inserts a small set of restaurants, pizzas and prices in one transaction
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seeding restaurants: %w", err)
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seeding pizzas: %w", err)
		}

		restaurantPizzas := []models.RestaurantPizza{
			{RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID, Price: 1},
			{RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID, Price: 4},
			{RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID, Price: 5},
		}
		if err := tx.Create(&restaurantPizzas).Error; err != nil {
			return fmt.Errorf("seeding restaurant pizzas: %w", err)
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(restaurants),
			"pizzas":            len(pizzas),
			"restaurant_pizzas": len(restaurantPizzas),
		}).Info("Database seeded successfully")
		return nil
	})
}
