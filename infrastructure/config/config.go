package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string

	// Table names
	CustomersTable  string
	ProductsTable   string
	OrdersTable     string
	OrderItemsTable string

	// Index names
	EmailIndexName         string
	CategoryIndexName      string
	CustomerOrderIndexName string
	OrderItemsIndexName    string
	ProductSalesIndexName  string

	// Eventing
	EventBusName string

	// Request handling
	RequestTimeout time.Duration

	// Logging and features
	LogLevel      string
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),

		CustomersTable:  getEnv("CUSTOMERS_TABLE", "Customers"),
		ProductsTable:   getEnv("PRODUCTS_TABLE", "Products"),
		OrdersTable:     getEnv("ORDERS_TABLE", "Orders"),
		OrderItemsTable: getEnv("ORDER_ITEMS_TABLE", "OrderItems"),

		EmailIndexName:         getEnv("EMAIL_INDEX_NAME", "email-gsi"),
		CategoryIndexName:      getEnv("CATEGORY_INDEX_NAME", "category-gsi"),
		CustomerOrderIndexName: getEnv("CUSTOMER_ORDER_INDEX_NAME", "customer-order-gsi"),
		OrderItemsIndexName:    getEnv("ORDER_ITEMS_INDEX_NAME", "order-items-gsi"),
		ProductSalesIndexName:  getEnv("PRODUCT_SALES_INDEX_NAME", "product-sales-gsi"),

		EventBusName: getEnv("EVENT_BUS_NAME", "commerce-events"),

		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_MS", 15000)) * time.Millisecond,

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_MS must be positive")
	}
	if c.Environment == "production" {
		if c.OrdersTable == "" || c.OrderItemsTable == "" || c.CustomersTable == "" || c.ProductsTable == "" {
			return fmt.Errorf("table names are required in production")
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required in production")
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
