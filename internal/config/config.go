package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name     string
		Env      string
		LogLevel string
	}

	API struct {
		Host string
		Port string
	}

	Hubtel struct {
		ClientID     string
		ClientSecret string
		SenderID     string
		HTTPTimeout  time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Cache struct {
		SentTTL time.Duration
	}
}

// Load reads .env (if present) and the environment, applies defaults and
// reports every missing required key in a single error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}
	cfg := &Config{}

	// App
	cfg.App.Name = ldr.getString("APP_NAME", "hubtel-sms", false)
	cfg.App.Env = ldr.getString("APP_ENV", "development", false)
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info", false)

	// API
	cfg.API.Host = ldr.getString("API_HOST", "0.0.0.0", false)
	cfg.API.Port = ldr.getString("API_PORT", "8080", false)

	// Hubtel
	cfg.Hubtel.ClientID = ldr.getString("HUBTEL_CLIENT_ID", "", true)
	cfg.Hubtel.ClientSecret = ldr.getString("HUBTEL_CLIENT_SECRET", "", true)
	cfg.Hubtel.SenderID = ldr.getString("HUBTEL_SENDER_ID", "", true)
	cfg.Hubtel.HTTPTimeout = ldr.getDuration("HUBTEL_HTTP_TIMEOUT", 10*time.Second)

	// Redis (empty address disables the sent-message cache)
	cfg.Redis.Addr = ldr.getString("REDIS_ADDR", "", false)
	cfg.Redis.Password = ldr.getString("REDIS_PASSWORD", "", false)
	cfg.Redis.DB = ldr.getInt("REDIS_DB", 0)

	cfg.Cache.SentTTL = ldr.getDuration("SENT_CACHE_TTL", 24*time.Hour)

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP API listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.API.Host, c.API.Port)
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) getString(key, def string, required bool) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		if required {
			l.errs = append(l.errs, fmt.Sprintf("%s is required", key))
		}
		return def
	}
	return v
}

func (l *envLoader) getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s must be a valid integer", key))
		return def
	}
	return i
}

func (l *envLoader) getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s must be a valid duration", key))
		return def
	}
	return d
}
