package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PathEnv names the variable holding the config file path when none is given.
const PathEnv = "CORKBOARD_CONFIG_PATH"

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host           string   `yaml:"host" env:"CORKBOARD_SERVER_HOST" env-default:"0.0.0.0"`
	Port           int      `yaml:"port" env:"CORKBOARD_SERVER_PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORKBOARD_ALLOWED_ORIGINS" env-separator:","`
}

type TransportConfig struct {
	Mode string `yaml:"mode" env:"CORKBOARD_TRANSPORT" env-default:"stdio"`
}

type StoreConfig struct {
	Driver  string        `yaml:"driver" env:"CORKBOARD_STORE_DRIVER" env-default:"sqlite"`
	Path    string        `yaml:"path" env:"CORKBOARD_DB_PATH" env-default:"corkboard.db"`
	DSN     string        `yaml:"dsn" env:"CORKBOARD_DATABASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"CORKBOARD_STORE_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"CORKBOARD_LOG_LEVEL" env-default:"info"`
	Path  string `yaml:"path" env:"CORKBOARD_LOG_PATH"`
}

// Load reads configuration from an optional .env file, an optional YAML file
// and environment variables, in that order of increasing precedence. An empty
// path falls back to CORKBOARD_CONFIG_PATH.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	var cfg Config
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q: want stdio or http", c.Transport.Mode)
	}
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return errors.New("store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DSN == "" {
			return errors.New("store.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("invalid store driver %q: want sqlite or postgres", c.Store.Driver)
	}
	if c.Transport.Mode == "http" && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Store.Timeout < 0 {
		return fmt.Errorf("invalid store timeout %s", c.Store.Timeout)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
