package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	databaseURL := flag.String("database-url", config.GetEnvWithDefault("DATABASE_URL", config.DefaultDatabaseURL), "Database connection string")
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	flag.Parse()

	dbConfig, err := database.ParseDatabaseURL(*databaseURL)
	if err != nil {
		log.Fatal("Invalid database url:", err)
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := clearData(db); err != nil {
			log.Fatal("Failed to clear database:", err)
		}
		fmt.Println("✓ Existing data removed")
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if !seeded {
		fmt.Println("Database already contains pizzas, nothing seeded. Use -reset to start over.")
	} else {
		fmt.Println("✓ Development data seeded")
	}

	printSummary(db)
	fmt.Println("\nTry it out:")
	fmt.Println("curl http://localhost:8080/restaurants")
	fmt.Println("curl -X POST http://localhost:8080/restaurant_pizzas \\")
	fmt.Println("  -H 'Content-Type: application/json' \\")
	fmt.Println(`  -d '{"pizza_id": 1, "restaurant_id": 2, "price": 15}'`)
}

// clearData removes all rows, children first so foreign keys stay satisfied
func clearData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// printSummary prints the row count of every table
func printSummary(db *gorm.DB) {
	var restaurants, pizzas, restaurantPizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&restaurantPizzas)

	fmt.Printf("Restaurants: %d\n", restaurants)
	fmt.Printf("Pizzas: %d\n", pizzas)
	fmt.Printf("Restaurant pizzas: %d\n", restaurantPizzas)
}
