package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(EnvironmentLogLevel(GetEnvWithDefault("APP_ENV", "development")))
}

// DefaultDatabaseURL points at a SQLite file in the working directory
const DefaultDatabaseURL = "sqlite://app.db"

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port     int    `json:"port"`
	Host     string `json:"host"`
	BasePath string `json:"base_path"`
	Env      string `json:"env"`

	// Database configuration
	DatabaseURL  string `json:"database_url"`
	SeedDatabase bool   `json:"seed_database"`

	// Logging configuration, empty follows Env
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, BasePath: %s, Env: %s, DatabaseURL: %s, SeedDatabase: %t, LogLevel: %s}",
		c.Port, c.Host, c.BasePath, c.Env, maskDatabaseURL(c.DatabaseURL), c.SeedDatabase, c.LogLevel)
}

// Address returns the host:port pair the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%v:%d", c.Host, c.Port)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like APP_PORT and DATABASE_URL
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", DefaultDatabaseURL)
	parsed, err := url.Parse(dbURL)
	if err != nil || parsed.Scheme == "" {
		return nil, fmt.Errorf("invalid DATABASE_URL format: %s", maskDatabaseURL(dbURL))
	}

	logLevel := GetEnvWithDefault("LOG_LEVEL", "")
	if logLevel != "" {
		if _, err := logrus.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	config := &Config{
		Port:         port,
		Host:         GetEnvWithDefault("APP_HOST", "localhost"),
		BasePath:     strings.TrimSuffix(GetEnvWithDefault("BASE_PATH", ""), "/"),
		Env:          GetEnvWithDefault("APP_ENV", "development"),
		DatabaseURL:  dbURL,
		SeedDatabase: GetEnvAsType("SEED_DATABASE", true),
		LogLevel:     logLevel,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Level returns LogLevel when set, otherwise the default level for Env
func (c *Config) Level() logrus.Level {
	if level, err := logrus.ParseLevel(c.LogLevel); c.LogLevel != "" && err == nil {
		return level
	}
	return EnvironmentLogLevel(c.Env)
}

// EnvironmentLogLevel maps APP_ENV to the default log level for that environment
func EnvironmentLogLevel(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
