package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config is the central typed configuration struct.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Log  LogConfig
	View ViewConfig
}

type AppConfig struct {
	Name  string `env:"APP_NAME" envDefault:"GoSignup"`
	Env   string `env:"APP_ENV" envDefault:"local"` // local | production | staging | testing
	Debug bool   `env:"APP_DEBUG" envDefault:"true"`
	URL   string `env:"APP_URL" envDefault:"http://localhost"`
	Port  string `env:"APP_PORT" envDefault:"8000"`
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"`  // debug | info | warn | error; empty picks from APP_DEBUG
	Format string `env:"LOG_FORMAT"` // text | json; empty picks from APP_ENV
}

type ViewConfig struct {
	// Dir overrides the embedded templates with files on disk.
	Dir string `env:"VIEW_DIR"`
	Ext string `env:"VIEW_EXT" envDefault:".html"`
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.App.Port }

// IsLocal reports whether the app runs in the local environment.
func (c *Config) IsLocal() bool { return c.App.Env == "local" }

// LogLevel returns the configured level, falling back to debug when
// APP_DEBUG is set and info otherwise.
func (c *Config) LogLevel() string {
	if c.Log.Level != "" {
		return c.Log.Level
	}
	if c.App.Debug {
		return "debug"
	}
	return "info"
}

// LogFormat returns the configured format: text locally, json elsewhere.
func (c *Config) LogFormat() string {
	if c.Log.Format != "" {
		return c.Log.Format
	}
	if c.IsLocal() {
		return "text"
	}
	return "json"
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return b
}
