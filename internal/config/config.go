// Package config assembles the runtime configuration of the API and worker
// processes from an optional .env file, an optional YAML file and the
// environment, in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"publications-api/internal/infra/db"
	envcfg "publications-api/pkg/config"
)

// Config is the full process configuration.
type Config struct {
	Version   string          `yaml:"version"`
	Log       LogConfig       `yaml:"log"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Worker    WorkerConfig    `yaml:"worker"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

type ServerConfig struct {
	Addr               string        `yaml:"addr"`
	ReadTimeout        time.Duration `yaml:"read_timeout"`
	WriteTimeout       time.Duration `yaml:"write_timeout"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes       int64         `yaml:"max_body_bytes"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	TrustProxy         bool          `yaml:"trust_proxy"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"`
	RPS             float64       `yaml:"rps"`
	Burst           int           `yaml:"burst"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

type WorkerConfig struct {
	CronSchedule string `yaml:"cron_schedule"`
	Timezone     string `yaml:"timezone"`
	MetricsPort  int    `yaml:"metrics_port"`
}

// Pool converts the database section into connection pool settings.
func (d DatabaseConfig) Pool() db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    d.MaxOpenConns,
		MaxIdleConns:    d.MaxIdleConns,
		ConnMaxLifetime: d.ConnMaxLifetime,
		ConnMaxIdleTime: d.ConnMaxIdleTime,
	}
}

// Default returns the configuration used when nothing overrides it.
// Database.URL has no default and must be supplied.
func Default() *Config {
	pool := db.DefaultConnectionConfig()
	return &Config{
		Version: "dev",
		Log:     LogConfig{Level: "info", Format: "json"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    pool.MaxOpenConns,
			MaxIdleConns:    pool.MaxIdleConns,
			ConnMaxLifetime: pool.ConnMaxLifetime,
			ConnMaxIdleTime: pool.ConnMaxIdleTime,
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			RPS:             10,
			Burst:           20,
			CleanupInterval: 5 * time.Minute,
			IdleTimeout:     10 * time.Minute,
		},
		Tracing: TracingConfig{ServiceName: "publications-api"},
		Worker: WorkerConfig{
			CronSchedule: "* * * * *",
			Timezone:     "UTC",
			MetricsPort:  9091,
		},
	}
}

// Load reads .env (if present), then CONFIG_FILE (if set), then environment
// overrides, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path, ok := envcfg.Lookup("CONFIG_FILE"); ok {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile merges a YAML file into c. Keys absent from the file keep their value.
func (c *Config) LoadFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with any environment variables that are set.
func (c *Config) ApplyEnv() {
	c.Version = envcfg.GetEnvString("VERSION", c.Version)
	c.Log.Level = envcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envcfg.GetEnvString("LOG_FORMAT", c.Log.Format)

	c.Server.Addr = envcfg.GetEnvString("HTTP_ADDR", c.Server.Addr)
	c.Server.RequestTimeout = envcfg.GetEnvDuration("HTTP_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = envcfg.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.CORSAllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.Server.CORSAllowedOrigins)
	c.Server.TrustProxy = envcfg.GetEnvBool("TRUST_PROXY", c.Server.TrustProxy)

	c.Database.URL = envcfg.GetEnvString("DATABASE_URL", c.Database.URL)
	c.Database.MaxOpenConns = envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.ConnMaxIdleTime = envcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Database.ConnMaxIdleTime)

	c.RateLimit.Enabled = envcfg.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RPS = envcfg.GetEnvFloat("RATELIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envcfg.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)

	c.Tracing.Enabled = envcfg.GetEnvBool("TRACING_ENABLED", c.Tracing.Enabled)

	c.Worker.CronSchedule = envcfg.GetEnvString("WORKER_CRON_SCHEDULE", c.Worker.CronSchedule)
	c.Worker.Timezone = envcfg.GetEnvString("WORKER_TIMEZONE", c.Worker.Timezone)
	c.Worker.MetricsPort = envcfg.GetEnvInt("METRICS_PORT", c.Worker.MetricsPort)
}
