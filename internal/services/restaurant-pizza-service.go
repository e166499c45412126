package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaFilter narrows ListRestaurantPizzas. Zero fields are ignored.
type RestaurantPizzaFilter struct {
	RestaurantID uint
	PizzaID      uint
}

// RestaurantPizzaService manages the prices restaurants charge for pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza checks that both references exist, then inserts the association.
	// The returned value has Restaurant and Pizza loaded.
	CreateRestaurantPizza(restaurantID, pizzaID uint, price float64) (models.RestaurantPizza, error)
	// ListRestaurantPizzas retrieves associations ordered by id with both endpoints loaded
	ListRestaurantPizzas(filter RestaurantPizzaFilter) ([]models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db     *gorm.DB
	pizzas PizzaService
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService.
// pizza_id references are resolved through pizzas.
func NewRestaurantPizzaService(db *gorm.DB, pizzas PizzaService) RestaurantPizzaService {
	return &restaurantPizzaService{db: db, pizzas: pizzas}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(restaurantID, pizzaID uint, price float64) (models.RestaurantPizza, error) {
	var restaurant models.Restaurant
	restaurantFound, err := exists(s.db, &restaurant, restaurantID)
	if err != nil {
		return models.RestaurantPizza{}, models.NewInternalError(fmt.Errorf("loading restaurant %d: %w", restaurantID, err))
	}
	pizza, err := s.pizzas.GetPizzaByID(pizzaID)
	pizzaFound := err == nil
	if err != nil && !isKind(err, models.ErrNotFound) {
		return models.RestaurantPizza{}, err
	}

	var messages []string
	if !pizzaFound {
		messages = append(messages, fmt.Sprintf("pizza_id %d does not exist", pizzaID))
	}
	if !restaurantFound {
		messages = append(messages, fmt.Sprintf("restaurant_id %d does not exist", restaurantID))
	}
	if len(messages) > 0 {
		return models.RestaurantPizza{}, models.NewReferenceError(messages...)
	}

	rp := models.RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}
	if err := s.db.Omit(clause.Associations).Create(&rp).Error; err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return models.RestaurantPizza{}, appErr
		}
		return models.RestaurantPizza{}, models.NewInternalError(fmt.Errorf("creating restaurant pizza: %w", err))
	}
	rp.Restaurant = restaurant
	rp.Pizza = pizza

	log.WithFields(logrus.Fields{
		"restaurant_pizza_id": rp.ID,
		"restaurant_id":       restaurantID,
		"pizza_id":            pizzaID,
	}).Info("Restaurant pizza created")
	return rp, nil
}

func (s *restaurantPizzaService) ListRestaurantPizzas(filter RestaurantPizzaFilter) ([]models.RestaurantPizza, error) {
	query := s.db.Preload("Restaurant").Preload("Pizza").Order("id")
	if filter.RestaurantID != 0 {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.PizzaID != 0 {
		query = query.Where("pizza_id = ?", filter.PizzaID)
	}

	var associations []models.RestaurantPizza
	if err := query.Find(&associations).Error; err != nil {
		return nil, models.NewInternalError(fmt.Errorf("listing restaurant pizzas: %w", err))
	}
	return associations, nil
}

func isKind(err error, kind models.ErrorKind) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// exists loads the row with the given primary key into dest and reports whether it was found
func exists(db *gorm.DB, dest interface{}, id uint) (bool, error) {
	result := db.Limit(1).Find(dest, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
