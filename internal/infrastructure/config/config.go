// Package config loads the service settings with viper: defaults, then an
// optional YAML file (CONFIG_FILE), then environment variables.
//
// Environment keys are the upper-cased dotted path with "." replaced by "_",
// e.g. REDIS_ADDR or TABLES_ORDERS. The legacy variables DYNAMODB_ENDPOINT,
// AWS_REGION, MERCADOPAGO_ACCESS_TOKEN and PAYMENT_GATEWAY_MOCK keep working.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Session     SessionConfig     `mapstructure:"session"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Payments    PaymentsConfig    `mapstructure:"payments"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type TablesConfig struct {
	Restaurants    string `mapstructure:"restaurants"`
	Tables         string `mapstructure:"tables"`
	PaymentConfigs string `mapstructure:"payment_configs"`
	Categories     string `mapstructure:"categories"`
	MenuItems      string `mapstructure:"menu_items"`
	Orders         string `mapstructure:"orders"`
	Batches        string `mapstructure:"batches"`
	OrderItems     string `mapstructure:"order_items"`
	Guests         string `mapstructure:"guests"`
	Reviews        string `mapstructure:"reviews"`
}

// RedisConfig.Enabled false runs a single instance with in-process fan-out
// and sessions kept in memory.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type SessionConfig struct {
	TTL    time.Duration `mapstructure:"ttl"`
	Cookie string        `mapstructure:"cookie"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	Mock        bool   `mapstructure:"mock"`
}

type PaymentsConfig struct {
	ReturnURL string `mapstructure:"return_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")

	v.SetDefault("tables.restaurants", "restaurants")
	v.SetDefault("tables.tables", "tables")
	v.SetDefault("tables.payment_configs", "payment_configs")
	v.SetDefault("tables.categories", "categories")
	v.SetDefault("tables.menu_items", "menu_items")
	v.SetDefault("tables.orders", "orders")
	v.SetDefault("tables.batches", "order_batches")
	v.SetDefault("tables.order_items", "order_items")
	v.SetDefault("tables.guests", "order_guests")
	v.SetDefault("tables.reviews", "reviews")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cookie", "comanda_session")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("payments.return_url", "http://localhost:8080/v1/payments/return")
}

// legacyEnv maps config keys to the plain variable names used by existing
// deployments.
var legacyEnv = map[string][]string{
	"dynamodb.region":            {"AWS_REGION"},
	"dynamodb.endpoint":          {"DYNAMODB_ENDPOINT"},
	"dynamodb.access_key_id":     {"AWS_ACCESS_KEY_ID"},
	"dynamodb.secret_access_key": {"AWS_SECRET_ACCESS_KEY"},
	"mercadopago.access_token":   {"MERCADOPAGO_ACCESS_TOKEN"},
	"mercadopago.mock":           {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range legacyEnv {
		if err := v.BindEnv(append([]string{key, strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("session.ttl must be positive, got %s", cfg.Session.TTL)
	}
	return &cfg, nil
}
