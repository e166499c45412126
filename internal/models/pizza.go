package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Ingredients string `gorm:"not null"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// PizzaView is the JSON shape of a pizza. It never embeds restaurants.
type PizzaView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// View returns the serializable form of the pizza
func (p Pizza) View() PizzaView {
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

// PizzaViews serializes a slice of pizzas, keeping the input order
func PizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, p.View())
	}
	return views
}
