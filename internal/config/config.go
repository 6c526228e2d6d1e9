package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ErrorDetail controls how much of an internal error reaches the client
	// in a 500 response body.
	ErrorDetail            string `mapstructure:"error_detail"             validate:"required,oneof=raw redacted opaque"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=mongodb postgres"`
	// URL is the connection string. A missing or unusable URL does not stop
	// the server; every task request then fails with a server error.
	URL    string `mapstructure:"url"`
	// Name is the MongoDB database holding the tasks collection. When empty
	// it is taken from the URL path.
	Name           string `mapstructure:"name"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// MetricsConfig controls the Prometheus endpoint. Path is required while
// Enabled is set.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"      validate:"omitempty,startswith=/"`
	Namespace string `mapstructure:"namespace" validate:"omitempty,alphanum"`
}

// Error detail modes for ServerConfig.ErrorDetail.
const (
	ErrorDetailRaw      = "raw"
	ErrorDetailRedacted = "redacted"
	ErrorDetailOpaque   = "opaque"
)

// Database drivers for DatabaseConfig.Driver.
const (
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
)
