package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string   `env:"PORT,            default=8000"`
	Env             string   `env:"ENV,             default=development"`
	JWTSecret       string   `env:"JWT_SECRET"`
	TokenTTLMinutes int      `env:"TOKEN_TTL_MINUTES, default=1440"`
	CORSOrigins     []string `env:"CORS_ORIGINS,    default=*"`
	LogLevel        string   `env:"LOG_LEVEL,       default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Contact ContactConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=website"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ContactConfig struct {
	// RateLimit is the number of form submissions allowed per window per
	// remote address. Zero or negative disables throttling.
	RateLimit         int `env:"CONTACT_RATE_LIMIT,          default=5"`
	RateWindowMinutes int `env:"CONTACT_RATE_WINDOW_MINUTES, default=60"`
}

// TokenTTL returns the configured bearer-token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// ContactRateWindow returns the rate-limit window for contact submissions.
func (c *Config) ContactRateWindow() time.Duration {
	return time.Duration(c.Contact.RateWindowMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
