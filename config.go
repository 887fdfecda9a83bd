package mongokit

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the connection configuration for a Manager. It is
// consumed at construction time and never mutated afterwards.
type Config struct {
	Host         string `env:"MONGODB_HOST" envDefault:"localhost"`      // Host is the transport target address.
	Port         int    `env:"MONGODB_PORT" envDefault:"27017"`          // Port is the transport target port.
	Database     string `env:"MONGODB_DATABASE,required"`                // Database is the logical database name.
	User         string `env:"MONGODB_USER"`                             // User is the auth principal (optional).
	Password     string `env:"MONGODB_PASSWORD"`                         // Password is the auth credential (optional).
	NativeParser bool   `env:"MONGODB_NATIVE_PARSER" envDefault:"true"`  // NativeParser selects the driver's structural document decoding; when false documents decode into maps.
	Safe         bool   `env:"MONGODB_SAFE" envDefault:"true"`           // Safe selects acknowledged writes (w:1); when false writes are unacknowledged (w:0).

	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for establishing the connection.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of pooled connections.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is how long a pooled connection may remain idle.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // RetryInterval is the delay between connection attempts.
}

// Validate checks the fields required to build a connection URI.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Host) == "" {
		return fmt.Errorf("%w: host cannot be empty", ErrInvalidConfig)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d is outside the valid TCP range", ErrInvalidConfig, cfg.Port)
	}

	if strings.TrimSpace(cfg.Database) == "" {
		return fmt.Errorf("%w: database name cannot be empty", ErrInvalidConfig)
	}

	return nil
}

// hasCredentials reports whether any credential half is configured. A lone
// user or a lone password still counts: authentication is attempted with
// empty-string substitution for the missing half.
func (cfg Config) hasCredentials() bool {
	return cfg.User != "" || cfg.Password != ""
}
