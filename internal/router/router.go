package router

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/validation"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const serviceName = "pizza-restaurants-api"

// New builds the Gin engine: middleware chain, API routes under cfg.BasePath,
// health check and swagger UI.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	validation.Setup()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
	)
	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.MethodNotAllowed)

	pizzaService := services.NewPizzaService(db)
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(pizzaService)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db, pizzaService))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	api := router.Group(cfg.BasePath)
	{
		api.GET("/restaurants", restaurantController.GetAllRestaurants)
		api.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
		api.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

		api.GET("/pizzas", pizzaController.GetAllPizzas)

		api.GET("/restaurant_pizzas", restaurantPizzaController.GetAllRestaurantPizzas)
		api.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := database.Ping(db); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
