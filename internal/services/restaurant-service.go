package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to read and delete restaurants
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by id, without associations
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its associations and their pizzas
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its associations in one transaction
	DeleteRestaurant(id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func errRestaurantNotFound() error {
	return models.NewNotFoundError("Restaurant not found")
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, models.NewInternalError(fmt.Errorf("listing restaurants: %w", err))
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, errRestaurantNotFound()
		}
		return models.Restaurant{}, models.NewInternalError(fmt.Errorf("loading restaurant %d: %w", id, err))
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRestaurantNotFound()
			}
			return models.NewInternalError(fmt.Errorf("loading restaurant %d: %w", id, err))
		}

		deleted := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if deleted.Error != nil {
			return models.NewInternalError(fmt.Errorf("deleting pizzas of restaurant %d: %w", id, deleted.Error))
		}
		log.WithField("restaurant_id", id).Debugf("Deleted %d restaurant pizzas", deleted.RowsAffected)

		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return models.NewInternalError(fmt.Errorf("deleting restaurant %d: %w", id, err))
		}
		return nil
	})
}
