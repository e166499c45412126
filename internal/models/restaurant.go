package models

// Restaurant represents a restaurant and the pizzas it sells through RestaurantPizza rows
type Restaurant struct {
	ID               uint              `gorm:"primaryKey"`
	Name             string            `gorm:"not null"`
	Address          string            `gorm:"not null"`
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantSummary is the flat JSON shape used in listings and nested views
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetail is the JSON shape returned for a single restaurant
type RestaurantDetail struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// Summary returns the restaurant without its associations
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// Detail returns the restaurant with its associations and their pizzas.
// RestaurantPizzas must be preloaded together with RestaurantPizzas.Pizza.
func (r Restaurant) Detail() RestaurantDetail {
	associations := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		associations = append(associations, rp.View())
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: associations,
	}
}

// RestaurantSummaries serializes a slice of restaurants, keeping the input order
func RestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, r.Summary())
	}
	return summaries
}
