package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"        validate:"required,numeric"`
	Env      string `env:"ENV,       default=development" validate:"oneof=development production test"`
	LogLevel string `env:"LOG_LEVEL, default=info"        validate:"oneof=trace debug info warn warning error"`

	// UploadDir is served under /uploads.
	UploadDir       string        `env:"UPLOAD_DIR,       default=uploads" validate:"required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"     validate:"gt=0"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Notify NotifyConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI"`
	Database string        `env:"MONGO_DB,      default=intake"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig is optional: an empty Addr disables publishing to Redis.
type RedisConfig struct {
	Addr    string `env:"REDIS_ADDR"`
	DB      int    `env:"REDIS_DB,      default=0"                   validate:"gte=0"`
	Channel string `env:"REDIS_CHANNEL, default=proposals.submitted" validate:"required"`
}

type NotifyConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"   validate:"gte=1"`
	Buffer  int `env:"NOTIFY_BUFFER,  default=256" validate:"gte=1"`
}

// Development reports whether the service runs with developer conveniences
// such as pretty console logs.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
