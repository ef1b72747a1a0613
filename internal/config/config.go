package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat              string   `mapstructure:"log_format" validate:"required,oneof=json text"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
}

// Supported values of DatabaseConfig.Driver.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver is "memory" for the in-process stores or "postgres".
	Driver       string `mapstructure:"driver" validate:"required,oneof=memory postgres"`
	URL          string `mapstructure:"url" validate:"required_if=Driver postgres"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
}

// CacheConfig controls the Redis read-through cache for loans and cards.
// TTLSeconds bounds how long a cached record can outlive a concurrent write,
// so it must be positive when the cache is enabled.
type CacheConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Enabled true"`
	RedisPassword string `mapstructure:"redis_password"`
	TTLSeconds    int    `mapstructure:"ttl_seconds" validate:"required_if=Enabled true,gte=0"`
}
