package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Persistence backends for the catalog.
const (
	BackendJetStream = "jetstream"
	BackendRedis     = "redis"
	BackendSQLite    = "sqlite"
	BackendMemory    = "memory"
)

type Config struct {
	HTTP        HTTP
	Persistence Persistence
	Enquiry     Enquiry
	Admin       Admin
	RateLimit   RateLimit

	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" env-default:"24h"`
	LogLevel           string        `env:"LOG_LEVEL" env-default:"info"`
}

type HTTP struct {
	Port           int    `env:"HTTP_PORT" env-default:"3000"`
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AccessLog      bool   `env:"HTTP_ACCESS_LOG" env-default:"true"`
}

type Persistence struct {
	Backend      string `env:"PERSISTENCE_BACKEND" env-default:"jetstream"`
	RedisAddr    string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPrefix  string `env:"REDIS_PREFIX" env-default:"arvind-trader:"`
	SQLitePath   string `env:"SQLITE_PATH" env-default:"./storefront.db"`
	JetStreamDir string `env:"JETSTREAM_DIR" env-default:"./data/jetstream"`
}

type Enquiry struct {
	DBPath string `env:"ENQUIRY_DB_PATH" env-default:"./enquiries.db"`
}

type Admin struct {
	Secret        string        `env:"ADMIN_SECRET" env-default:"admin123"`
	TokenDuration time.Duration `env:"ADMIN_TOKEN_DURATION" env-default:"12h"`
}

type RateLimit struct {
	Backend  string        `env:"RATE_LIMIT_BACKEND" env-default:"memory"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading env file: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Persistence.Backend {
	case BackendJetStream, BackendRedis, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown PERSISTENCE_BACKEND %q", c.Persistence.Backend)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTP.Port)
	}
	switch c.RateLimit.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown RATE_LIMIT_BACKEND %q", c.RateLimit.Backend)
	}
	if c.Admin.Secret == "" {
		return errors.New("ADMIN_SECRET must not be empty")
	}
	return nil
}
