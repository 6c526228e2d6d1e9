package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "TASKS"

// ConfigFileEnv names the environment variable holding an explicit config file path.
const ConfigFileEnv = "TASKS_CONFIG_FILE"

// envBindings lists every key together with the environment variables that
// may supply it. MONGO_URI and PORT are accepted for compatibility with the
// deployment conventions of the service this one replaces.
var envBindings = []struct {
	key  string
	envs []string
}{
	{"server.port", []string{"TASKS_SERVER_PORT", "PORT"}},
	{"server.log_level", []string{"TASKS_SERVER_LOG_LEVEL"}},
	{"server.error_detail", []string{"TASKS_SERVER_ERROR_DETAIL"}},
	{"server.shutdown_timeout_seconds", []string{"TASKS_SERVER_SHUTDOWN_TIMEOUT_SECONDS"}},
	{"database.driver", []string{"TASKS_DATABASE_DRIVER"}},
	{"database.url", []string{"TASKS_DATABASE_URL", "MONGO_URI"}},
	{"database.name", []string{"TASKS_DATABASE_NAME"}},
	{"database.timeout_seconds", []string{"TASKS_DATABASE_TIMEOUT_SECONDS"}},
	{"metrics.enabled", []string{"TASKS_METRICS_ENABLED"}},
	{"metrics.path", []string{"TASKS_METRICS_PATH"}},
	{"metrics.namespace", []string{"TASKS_METRICS_NAMESPACE"}},
}

// Load configuration from environment variables and optionally a config file.
// The file is the one named by TASKS_CONFIG_FILE, or config.yaml in the
// working directory when that variable is unset. Environment variables take
// precedence over values from the file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFromFile(os.Getenv(ConfigFileEnv))
}

// LoadFromFile behaves like Load but reads the given config file. An empty
// path falls back to an optional config.yaml in the working directory.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range envBindings {
		args := append([]string{b.key}, b.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variables for %s: %w", b.key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	validate.RegisterStructValidation(validateMetricsConfig, MetricsConfig{})
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.error_detail", ErrorDetailRedacted)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.driver", DriverMongoDB)
	v.SetDefault("database.name", "")
	v.SetDefault("database.timeout_seconds", 10)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "tasks")
}

// validateMetricsConfig rejects an enabled metrics endpoint without a path.
func validateMetricsConfig(sl validator.StructLevel) {
	m, ok := sl.Current().Interface().(MetricsConfig)
	if !ok {
		return
	}
	if m.Enabled && m.Path == "" {
		sl.ReportError(m.Path, "Path", "Path", "required_if_enabled", "")
	}
}
