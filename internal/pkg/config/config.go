package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Chat session store backends.
const (
	ChatStoreFile  = "file"
	ChatStoreRedis = "redis"
	ChatStoreMongo = "mongo"
)

type Config struct {
	// Host is the gateway's listen address. The gateway holds a single
	// signed-in session, so it stays on loopback unless told otherwise.
	Host     string `env:"HOST,      default=127.0.0.1"`
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend   BackendConfig
	KeepAlive KeepAliveConfig
	Chat      ChatConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

// BackendConfig describes the appointment REST API the portal talks to.
type BackendConfig struct {
	URL     string        `env:"BACKEND_URL,     default=http://localhost:8000/api"`
	Timeout time.Duration `env:"REQUEST_TIMEOUT, default=15s"`
	Rate    float64       `env:"REQUEST_RATE,    default=10"`
	Burst   int           `env:"REQUEST_BURST,   default=20"`
}

type KeepAliveConfig struct {
	Interval time.Duration `env:"KEEPALIVE_INTERVAL, default=5m"`
}

// ChatConfig selects where the chat session id is persisted.
type ChatConfig struct {
	Store     string `env:"CHAT_STORE,      default=file"`
	StorePath string `env:"CHAT_STORE_PATH"`
	ClientKey string `env:"CHAT_CLIENT_KEY, default=default"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=appointment_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Addr is the host:port the gateway listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDevelopment reports whether the portal runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("BACKEND_URL must not be empty")
	}
	if c.KeepAlive.Interval <= 0 {
		return fmt.Errorf("KEEPALIVE_INTERVAL must be positive, got %s", c.KeepAlive.Interval)
	}
	c.Chat.Store = strings.ToLower(strings.TrimSpace(c.Chat.Store))
	switch c.Chat.Store {
	case ChatStoreFile, ChatStoreRedis, ChatStoreMongo:
	default:
		return fmt.Errorf("CHAT_STORE must be one of file, redis, mongo; got %q", c.Chat.Store)
	}
	return nil
}
