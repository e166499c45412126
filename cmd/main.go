package main

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/docs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/router"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection, schema and seed data
	db := setupDatabase(configuration)

	// Initialize Gin router
	setUpSwagger(configuration)
	engine := router.New(configuration, db)

	// Start the server
	log.Infof("Starting server on %s", configuration.Address())
	checkPanicErr(engine.Run(configuration.Address()))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter. The level follows APP_ENV
// unless LOG_LEVEL was set explicitly.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level := conf.Level()
	log.SetLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)
	middleware.SetLogLevel(level)

	if conf.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the database named by DATABASE_URL, applies migrations
// and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := database.ParseDatabaseURL(conf.DatabaseURL)
	checkPanicErr(err)

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedDatabase {
		_, err := database.SeedIfEmpty(db)
		checkPanicErr(err)
	}
	return db
}

// setUpSwagger points the generated swagger document at the configured address and base path
func setUpSwagger(conf *config.Config) {
	docs.SwaggerInfo.Host = conf.Address()
	docs.SwaggerInfo.BasePath = conf.BasePath
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}
}
