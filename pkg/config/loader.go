package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvOnce guards the one-time .env bootstrap shared by all Load calls.
var dotenvOnce sync.Once

// Load parses environment variables into a new configuration value of type T
// based on `env` struct tags. On first use it attempts to load a .env file
// from the working directory; a missing file is not an error.
//
// Example:
//
//	type MongoConfig struct {
//		Host string `env:"MONGODB_HOST" envDefault:"localhost"`
//		Port int    `env:"MONGODB_PORT" envDefault:"27017"`
//	}
//
//	cfg, err := config.Load[MongoConfig]()
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional; absence is the common production case.
		_ = godotenv.Load()
	})

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics on failure. Intended for
// configurations without which the application cannot start.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}

	return cfg
}
