// Package config loads the static site server settings from an optional JSON
// file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultAddr     = "127.0.0.1"
	defaultPort     = ":4173"
	defaultAssets   = "web"
	defaultIndex    = "index.html"
	defaultLogLevel = "info"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `json:"addr"`
	Port string `json:"port"`
}

// AppConfig locates the site assets.
type AppConfig struct {
	Assets string `json:"assets"`
	Index  string `json:"index"`
}

// LogConfig configures the logger. An empty Dir disables the file writer.
type LogConfig struct {
	Level string `json:"level"`
	Dir   string `json:"dir"`
}

// Config is the combined runtime configuration.
type Config struct {
	Server ServerConfig `json:"server"`
	App    AppConfig    `json:"app"`
	Log    LogConfig    `json:"log"`
}

// envOverrides holds raw environment values; empty values leave the file or
// default setting in place.
type envOverrides struct {
	Addr     string `env:"SITE_ADDR"`
	Port     string `env:"SITE_PORT"`
	Assets   string `env:"SITE_ASSETS_DIR"`
	Index    string `env:"SITE_INDEX"`
	LogLevel string `env:"SITE_LOG_LEVEL"`
	LogDir   string `env:"SITE_LOG_DIR"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: defaultAddr, Port: defaultPort},
		App:    AppConfig{Assets: defaultAssets, Index: defaultIndex},
		Log:    LogConfig{Level: defaultLogLevel},
	}
}

// Load reads the JSON config at path, fills defaults, then applies SITE_*
// environment overrides. An empty path or a missing file yields the defaults.
// Variables from dotenv files only fill what the process environment leaves
// unset or empty; missing dotenv files are skipped.
func Load(path string, dotenv ...string) (Config, error) {
	var raw Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := json.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("decode config: %w", err)
			}
		}
	}

	environment, err := environ(dotenv)
	if err != nil {
		return Config{}, err
	}
	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	raw.apply(overrides)

	cfg := Default()
	if v := strings.TrimSpace(raw.Server.Addr); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(raw.Server.Port); v != "" {
		cfg.Server.Port = normalizePort(v)
	}
	if v := strings.TrimSpace(raw.App.Assets); v != "" {
		cfg.App.Assets = v
	}
	if v := strings.TrimSpace(raw.App.Index); v != "" {
		cfg.App.Index = v
	}
	if v := strings.TrimSpace(raw.Log.Level); v != "" {
		cfg.Log.Level = v
	}
	cfg.Log.Dir = strings.TrimSpace(raw.Log.Dir)
	return cfg, nil
}

func environ(dotenv []string) (map[string]string, error) {
	environment := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environment[key] = value
		}
	}
	for _, path := range dotenv {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read dotenv %s: %w", path, err)
		}
		for key, value := range values {
			if environment[key] == "" {
				environment[key] = value
			}
		}
	}
	return environment, nil
}

func (c *Config) apply(o envOverrides) {
	if o.Addr != "" {
		c.Server.Addr = o.Addr
	}
	if o.Port != "" {
		c.Server.Port = o.Port
	}
	if o.Assets != "" {
		c.App.Assets = o.Assets
	}
	if o.Index != "" {
		c.App.Index = o.Index
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogDir != "" {
		c.Log.Dir = o.LogDir
	}
}

// ListenAddr joins the server address and port.
func (c Config) ListenAddr() string {
	return c.Server.Addr + c.Server.Port
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("config: server port is required")
	}
	if strings.TrimSpace(c.App.Assets) == "" {
		return fmt.Errorf("config: assets directory is required")
	}
	if strings.TrimSpace(c.App.Index) == "" {
		return fmt.Errorf("config: index file is required")
	}
	return nil
}

func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
