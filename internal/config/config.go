// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing. validate:"..." rules are checked after cleanenv has filled
// the struct.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true" validate:"oneof=dev staging prod"`

	HTTPServer `yaml:"http_server"`

	Roster Roster `yaml:"roster"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true" validate:"required"`

	// AllowedOrigins feeds the CORS policy of the JSON API.
	AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_SERVER_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:*"`
}

// Roster describes the remote endpoint the student records come from.
// Nested under roster: in the YAML file.
type Roster struct {
	Endpoint string `yaml:"endpoint" env:"ROSTER_ENDPOINT" env-default:"https://cs571.org/api/s24/hw2/students" validate:"required,url"`

	// HeaderName/HeaderValue form the single static header the roster
	// uses for authentication.
	HeaderName  string `yaml:"header_name" env:"ROSTER_HEADER_NAME" env-default:"X-CS571-ID" validate:"required"`
	HeaderValue string `yaml:"header_value" env:"ROSTER_HEADER_VALUE" env-required:"true" validate:"required"`

	Timeout time.Duration `yaml:"timeout" env:"ROSTER_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file, applies env overrides and
	// env-default values, and enforces env-required:"true".
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	// ── Source 1: environment variable ───────────────────────────────
	configPath := os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/students-directory --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}
