package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string        `env:"PORT,     default=8080"`
	Env      string        `env:"ENV,      default=development"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`

	// The signing secret, issuer and audience have no sane defaults:
	// starting without them is fatal.
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	JWTIssuer   string        `env:"JWT_ISSUER,   required"`
	JWTAudience string        `env:"JWT_AUDIENCE, required"`
	JWTTTL      time.Duration `env:"JWT_TTL,      default=24h"`

	Mongo MongoConfig
	Redis RedisConfig
	Login LoginConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hospital_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LoginConfig struct {
	MaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	AttemptWindow time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
