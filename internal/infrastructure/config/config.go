package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Purchase endpoint policies. "authenticated" requires a valid bearer token;
// "open" allows anonymous purchases.
const (
	PurchasePolicyAuthenticated = "authenticated"
	PurchasePolicyOpen          = "open"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret and TokenTTL are immutable process state after startup.
	// Rotating the secret invalidates every previously issued token.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	PurchasePolicy   string        `env:"PURCHASE_POLICY,    default=authenticated"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	LoginBlockWindow time.Duration `env:"LOGIN_BLOCK_WINDOW, default=15m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sweet_shop"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.PurchasePolicy != PurchasePolicyAuthenticated && cfg.PurchasePolicy != PurchasePolicyOpen {
		return nil, fmt.Errorf("config: unknown PURCHASE_POLICY %q", cfg.PurchasePolicy)
	}
	return &cfg, nil
}
