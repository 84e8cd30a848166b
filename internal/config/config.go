package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string        `env:"APP_ADDR" validate:"required"`
	PokeAPIBaseURL  string        `env:"POKEAPI_BASE_URL" validate:"required,url"`
	PokeAPIRPS      int           `env:"POKEAPI_RPS" validate:"min=0"`
	LogLevel        string        `env:"LOG_LEVEL" validate:"required"`
	LogFormat       string        `env:"LOG_FORMAT" validate:"oneof=console json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" validate:"dive,url"`
	EnableHSTS      bool          `env:"ENABLE_HSTS"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report failures by environment variable rather than Go field name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})
}

// LoadEnvFiles reads .env and .env.local. Variables already set in the
// process environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		PokeAPIBaseURL: getEnv("POKEAPI_BASE_URL", "https://pokeapi.co"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
	}

	var err error
	if cfg.PokeAPIRPS, err = strconv.Atoi(getEnv("POKEAPI_RPS", "0")); err != nil {
		return Config{}, fmt.Errorf("invalid POKEAPI_RPS %q", os.Getenv("POKEAPI_RPS"))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.EnableHSTS, err = strconv.ParseBool(getEnv("ENABLE_HSTS", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid ENABLE_HSTS: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", key))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be an absolute URL, got %q", key, fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s, got %v", key, fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", key))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Load reads the env files and then the environment.
func Load() (Config, error) {
	LoadEnvFiles()
	return FromEnv()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
