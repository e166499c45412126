package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get the list of all pizzas ordered by id
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (pc *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := pc.service.GetAllPizzas()
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, models.PizzaViews(pizzas))
}
