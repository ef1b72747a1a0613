package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable Load reads,
// e.g. EAZYBANK_SERVER_PORT for server.port.
const EnvPrefix = "EAZYBANK"

// defaults lists every configuration key. Keys must be known to viper
// for AutomaticEnv to apply during Unmarshal, so each has an entry here.
var defaults = map[string]any{
	"server.port":                     8080,
	"server.log_level":                "info",
	"server.log_format":               "json",
	"server.shutdown_timeout_seconds": 10,
	"server.cors_allowed_origins":     []string{"*"},
	"database.driver":                 "memory",
	"database.url":                    "",
	"database.max_open_conns":         10,
	"cache.enabled":                   false,
	"cache.redis_addr":                "",
	"cache.redis_password":            "",
	"cache.ttl_seconds":               300,
}

// Load configuration from environment variables and optionally config files.
// A config.yaml is looked up in the working directory and in the directory
// named by EAZYBANK_CONFIG_DIR. Environment variables take precedence over
// values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
