// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Storage backends
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// Config holds the application configuration
type Config struct {
	Port   int    `mapstructure:"port"`
	AppEnv string `mapstructure:"app_env"`

	DBDriver         string `mapstructure:"db_driver"`
	DBHost           string `mapstructure:"db_host"`
	DBPort           string `mapstructure:"db_port"`
	DBUsername       string `mapstructure:"db_username"`
	DBPassword       string `mapstructure:"db_password"`
	DBDatabase       string `mapstructure:"db_database"`
	UseConnectionStr bool   `mapstructure:"use_connection_str"`
	DBConnectionStr  string `mapstructure:"db_connection_str"`
	SQLitePath       string `mapstructure:"sqlite_path"`

	SecretKey   string        `mapstructure:"secret_key"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
	RememberTTL time.Duration `mapstructure:"remember_ttl"`

	UploadDir      string `mapstructure:"upload_dir"`
	StorageBackend string `mapstructure:"storage_backend"`
	GCSBucket      string `mapstructure:"gcs_bucket"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`

	AllowOrigin        string `mapstructure:"allow_origin"`
	RateLimitPerSecond uint   `mapstructure:"rate_limit_requests_per_second"`

	AdminEmail    string `mapstructure:"admin_email"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`

	Logging  bool   `mapstructure:"logging"`
	LogLevel string `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"port":                           8080,
	"app_env":                        "development",
	"db_driver":                      DriverPostgres,
	"db_host":                        "",
	"db_port":                        "",
	"db_username":                    "",
	"db_password":                    "",
	"db_database":                    "",
	"use_connection_str":             false,
	"db_connection_str":              "",
	"sqlite_path":                    "jobportal.db",
	"secret_key":                     "",
	"session_ttl":                    "12h",
	"remember_ttl":                   "720h",
	"upload_dir":                     "uploads",
	"storage_backend":                StorageLocal,
	"gcs_bucket":                     "",
	"max_upload_bytes":               10 << 20,
	"allow_origin":                   "",
	"rate_limit_requests_per_second": 5,
	"admin_email":                    "",
	"admin_username":                 "",
	"admin_password":                 "",
	"logging":                        false,
	"log_level":                      "info",
}

func read() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from the environment, applying defaults for unset keys.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase is Load for maintenance tools: only the database settings are checked.
func LoadDatabase() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.validateDriver(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validateDriver() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver)
	}
}

// Validate checks value ranges and required settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if err := c.validateDriver(); err != nil {
		errs = append(errs, err)
	}
	switch c.StorageBackend {
	case StorageLocal:
	case StorageGCS:
		if c.GCSBucket == "" {
			errs = append(errs, errors.New("GCS_BUCKET is required when STORAGE_BACKEND=gcs"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageLocal, StorageGCS, c.StorageBackend))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if c.SessionTTL <= 0 || c.RememberTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL and REMEMBER_TTL must be positive"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.RateLimitPerSecond == 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS_PER_SECOND must be positive"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// AllowOrigins splits ALLOW_ORIGIN into trimmed entries.
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
