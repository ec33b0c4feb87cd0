package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Persistence backend: "memory" or "dynamodb"
	PersistenceDriver string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	OwnerIndex    string // GSI1 - templates/articles by owner or author
	AuthorIndex   string // GSI2 - articles by template
	EventBusName  string

	// Image hosting
	ImageBaseURL string

	// Logging
	LogLevel string

	// Query caching
	CacheTTLSeconds int

	// Feature flags
	EnableEventPublishing bool
	EnableImageHosting    bool
	EnableCORS            bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:     getEnv("SERVER_ADDRESS", ":8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		PersistenceDriver: getEnv("PERSISTENCE_DRIVER", "memory"),
		AWSRegion:         getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable:     getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "pressroom")),
		OwnerIndex:        getEnv("OWNER_INDEX_NAME", "OwnerIndex"),
		AuthorIndex:       getEnv("AUTHOR_INDEX_NAME", "AuthorIndex"),
		EventBusName:      getEnv("EVENT_BUS_NAME", "pressroom-events"),

		// Image hosting
		ImageBaseURL: getEnv("IMAGE_BASE_URL", "https://images.local.test"),

		// Logging, caching and features
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		CacheTTLSeconds:       getEnvInt("CACHE_TTL_SECONDS", 30),
		EnableEventPublishing: getEnvBool("ENABLE_EVENT_PUBLISHING", false),
		EnableImageHosting:    getEnvBool("ENABLE_IMAGE_HOSTING", true),
		EnableCORS:            getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.PersistenceDriver {
	case "memory", "dynamodb":
	default:
		return fmt.Errorf("unknown PERSISTENCE_DRIVER %q", c.PersistenceDriver)
	}

	if c.Environment == "production" {
		if c.PersistenceDriver != "dynamodb" {
			return fmt.Errorf("PERSISTENCE_DRIVER must be dynamodb in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
		if c.EnableEventPublishing && c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required when event publishing is enabled")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
