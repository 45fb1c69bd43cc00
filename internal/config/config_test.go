package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadProductsDefaults(t *testing.T) {
	cfg := LoadProducts()

	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "shop", cfg.MongoDB)
	assert.Equal(t, "products", cfg.MongoCollection)
	assert.Equal(t, "http://inventory:8082", cfg.InventoryBaseURL)
	assert.Equal(t, 2*time.Second, cfg.StockLookupTimeout)
	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, 8, cfg.StockFanOutLimit)
}

func TestLoadProductsOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("STOCK_LOOKUP_TIMEOUT_MS", "500")
	t.Setenv("PRODUCT_LIST_LIMIT", "25")

	cfg := LoadProducts()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 500*time.Millisecond, cfg.StockLookupTimeout)
	assert.Equal(t, 25, cfg.ListLimit)
}

func TestNumericGarbageFallsBackToDefault(t *testing.T) {
	t.Setenv("PRODUCT_LIST_LIMIT", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg := LoadProducts()

	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadInventoryDefaults(t *testing.T) {
	cfg := LoadInventory()

	assert.Equal(t, ":8082", cfg.HTTPAddr)
	assert.Equal(t, "redis://redis:6379/0", cfg.RedisURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadPaymentsDefaults(t *testing.T) {
	cfg := LoadPayments()

	assert.Equal(t, ":8083", cfg.HTTPAddr)
	assert.Equal(t, "dev", cfg.Env)
}
