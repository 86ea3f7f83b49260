// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr            string        `yaml:"addr" validate:"required"`
		APIPrefix       string        `yaml:"api_prefix" validate:"omitempty,startswith=/"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	} `yaml:"server"`

	Database struct {
		URL             string        `yaml:"url" validate:"required"`
		MaxOpenConns    int           `yaml:"max_open_conns" validate:"gte=0"`
		MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"gte=0"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret string        `yaml:"jwt_secret" validate:"required,min=8"`
		TokenTTL  time.Duration `yaml:"token_ttl" validate:"gt=0"`
	} `yaml:"auth"`

	Log struct {
		Level string `yaml:"level" validate:"oneof=debug info warn error"`
	} `yaml:"log"`
}

// envOverrides maps environment variables onto config fields.
var envOverrides = map[string]func(*Config, string){
	"HTTP_ADDR":    func(c *Config, v string) { c.Server.Addr = v },
	"API_PREFIX":   func(c *Config, v string) { c.Server.APIPrefix = v },
	"DATABASE_URL": func(c *Config, v string) { c.Database.URL = v },
	"JWT_SECRET":   func(c *Config, v string) { c.Auth.JWTSecret = v },
	"LOG_LEVEL":    func(c *Config, v string) { c.Log.Level = v },
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, then validates the result. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	for name, apply := range envOverrides {
		if v, ok := os.LookupEnv(name); ok {
			apply(cfg, v)
		}
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	c.Server.APIPrefix = strings.TrimSuffix(c.Server.APIPrefix, "/")
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
