package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// restaurantID reads the :id path parameter. Ids that are not positive integers
// cannot match any row, so they resolve to the same 404 as an unknown id.
func restaurantID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.Error(models.NewNotFoundError("Restaurant not found"))
		return 0, false
	}
	return uint(id), true
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get the list of all restaurants ordered by id, without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (rc *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := rc.service.GetAllRestaurants()
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it sells and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (rc *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		return
	}

	restaurant, err := rc.service.GetRestaurantByID(id)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.Detail())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant together with all of its restaurant pizzas
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (rc *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		return
	}

	if err := rc.service.DeleteRestaurant(id); err != nil {
		ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
