package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Pointers tell a missing field apart from a zero value.
type CreateRestaurantPizzaRequest struct {
	PizzaID      *uint    `json:"pizza_id" binding:"required,min=1"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required,min=1"`
	Price        *float64 `json:"price" binding:"required,price"`
}

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant at a given price
	CreateRestaurantPizza(c *gin.Context)
	// GetAllRestaurantPizzas lists restaurant pizzas, optionally filtered
	GetAllRestaurantPizzas(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Sell an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (rpc *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if messages, ok := validation.Messages(err); ok {
			ctx.Error(models.NewValidationError(messages...))
			return
		}
		if errors.Is(err, io.EOF) {
			ctx.Error(models.NewValidationError("pizza_id is required", "restaurant_id is required", "price is required"))
			return
		}
		ctx.Error(models.NewMalformedError("Invalid request body", err))
		return
	}

	rp, err := rpc.service.CreateRestaurantPizza(*req.RestaurantID, *req.PizzaID, *req.Price)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, rp.Detail())
}

// GetAllRestaurantPizzas godoc
// @Summary Get restaurant pizzas
// @Description List restaurant pizzas ordered by id, optionally filtered by restaurant or pizza
// @Tags restaurant_pizzas
// @Produce json
// @Param restaurant_id query int false "Only associations of this restaurant"
// @Param pizza_id query int false "Only associations of this pizza"
// @Success 200 {array} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [get]
func (rpc *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	var filter services.RestaurantPizzaFilter
	var messages []string

	if raw := ctx.Query("restaurant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			messages = append(messages, "restaurant_id must be a positive integer")
		}
		filter.RestaurantID = uint(id)
	}
	if raw := ctx.Query("pizza_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			messages = append(messages, "pizza_id must be a positive integer")
		}
		filter.PizzaID = uint(id)
	}
	if len(messages) > 0 {
		ctx.Error(models.NewValidationError(messages...))
		return
	}

	associations, err := rpc.service.ListRestaurantPizzas(filter)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantPizzaDetails(associations))
}
