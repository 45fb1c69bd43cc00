// Package config provides runtime configuration values for the services.
package config

import (
	"os"
	"strconv"
	"time"
)

// Inventory holds configuration knobs for the inventory (stock ledger) service.
type Inventory struct {
	HTTPAddr        string
	RedisURL        string
	Env             string
	ShutdownTimeout time.Duration
}

// Products holds configuration knobs for the products (catalog) service.
type Products struct {
	HTTPAddr           string
	MongoURI           string
	MongoDB            string
	MongoCollection    string
	InventoryBaseURL   string
	StockLookupTimeout time.Duration
	ListLimit          int
	StockFanOutLimit   int
	Env                string
	ShutdownTimeout    time.Duration
}

// Payments holds configuration knobs for the payments service.
type Payments struct {
	HTTPAddr        string
	Env             string
	ShutdownTimeout time.Duration
}

// LoadInventory collects inventory-service configuration from environment with defaults.
func LoadInventory() Inventory {
	return Inventory{
		HTTPAddr:        getenv("HTTP_ADDR", ":8082"),
		RedisURL:        getenv("REDIS_URL", "redis://redis:6379/0"),
		Env:             getenv("ENV", "dev"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
	}
}

// LoadProducts collects products-service configuration from environment with defaults.
func LoadProducts() Products {
	return Products{
		HTTPAddr:           getenv("HTTP_ADDR", ":8081"),
		MongoURI:           getenv("MONGO_URI", "mongodb://mongo:27017"),
		MongoDB:            getenv("MONGO_DB", "shop"),
		MongoCollection:    getenv("MONGO_PRODUCTS_COLLECTION", "products"),
		InventoryBaseURL:   getenv("INVENTORY_BASE_URL", "http://inventory:8082"),
		StockLookupTimeout: durenvms("STOCK_LOOKUP_TIMEOUT_MS", 2000),
		ListLimit:          atoienv("PRODUCT_LIST_LIMIT", 1000),
		StockFanOutLimit:   atoienv("STOCK_FANOUT_LIMIT", 8),
		Env:                getenv("ENV", "dev"),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 10),
	}
}

// LoadPayments collects payments-service configuration from environment with defaults.
func LoadPayments() Payments {
	return Payments{
		HTTPAddr:        getenv("HTTP_ADDR", ":8083"),
		Env:             getenv("ENV", "dev"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	return time.Duration(atoienv(key, defMs)) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}
