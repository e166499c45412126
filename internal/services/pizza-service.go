package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides read access to the pizza catalogue
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by id
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, models.NewInternalError(fmt.Errorf("listing pizzas: %w", err))
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.NewNotFoundError("Pizza not found")
		}
		return models.Pizza{}, models.NewInternalError(fmt.Errorf("loading pizza %d: %w", id, err))
	}
	return pizza, nil
}
