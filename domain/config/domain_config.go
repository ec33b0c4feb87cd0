package config

import "time"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Template constraints
	MaxElementsPerTemplate int
	MaxTemplatesPerOwner   int
	MaxTemplateNameLength  int

	// Element constraints
	MaxPropertiesPerElement int
	MaxPropertyValueLength  int

	// Article constraints
	MaxArticleTitleLength int
	MaxContentEntries     int

	// Time constraints
	SessionTimeout    time.Duration
	ConnectionTimeout time.Duration

	// Validation settings
	AllowEmptyTemplateName bool

	// Feature flags
	EnableEventPublishing bool
	EnableImageHosting    bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// Template constraints
		MaxElementsPerTemplate: 200,
		MaxTemplatesPerOwner:   500,
		MaxTemplateNameLength:  200,

		// Element constraints
		MaxPropertiesPerElement: 50,
		MaxPropertyValueLength:  10000,

		// Article constraints
		MaxArticleTitleLength: 200,
		MaxContentEntries:     200,

		// Time constraints
		SessionTimeout:    24 * time.Hour,
		ConnectionTimeout: 30 * time.Second,

		// Validation settings
		AllowEmptyTemplateName: false,

		// Feature flags
		EnableEventPublishing: true,
		EnableImageHosting:    true,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More restrictive limits for production
	config.MaxElementsPerTemplate = 100
	config.MaxTemplatesPerOwner = 200
	config.MaxPropertyValueLength = 5000

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More permissive for development
	config.MaxElementsPerTemplate = 1000
	config.MaxTemplatesPerOwner = 10000
	config.AllowEmptyTemplateName = true

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}
