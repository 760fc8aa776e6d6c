package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "order_batches", cfg.Tables.Batches)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "comanda_session", cfg.Session.Cookie)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("TABLES_ORDERS", "dev_orders")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "dev_orders", cfg.Tables.Orders)
	assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	assert.True(t, cfg.MercadoPago.Mock)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\nsession:\n  ttl: 2h\nlog:\n  level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
