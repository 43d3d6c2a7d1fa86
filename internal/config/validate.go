package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	envcfg "publications-api/pkg/config"
)

// ErrMissingDatabaseURL is returned when no database URL was configured.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.URL == "" {
		errs = append(errs, ErrMissingDatabaseURL)
	}
	if c.Database.MaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("database max_open_conns must be positive, got %d", c.Database.MaxOpenConns))
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, fmt.Errorf("database max_idle_conns must be between 0 and max_open_conns, got %d", c.Database.MaxIdleConns))
	}
	if err := envcfg.ValidateNonNegativeDuration(c.Database.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("database conn_max_lifetime: %w", err))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server addr is required"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes))
	}
	if err := envcfg.ValidateDurationRange(c.Server.RequestTimeout, 100*time.Millisecond, 5*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("server request_timeout: %w", err))
	}
	if err := envcfg.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown_timeout: %w", err))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit rps must be positive, got %v", c.RateLimit.RPS))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit burst must be positive, got %d", c.RateLimit.Burst))
		}
		if err := envcfg.ValidatePositiveDuration(c.RateLimit.CleanupInterval); err != nil {
			errs = append(errs, fmt.Errorf("rate_limit cleanup_interval: %w", err))
		}
	}

	if err := ValidateCronSchedule(c.Worker.CronSchedule); err != nil {
		errs = append(errs, err)
	}
	if _, err := time.LoadLocation(c.Worker.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid worker timezone %q: %w", c.Worker.Timezone, err))
	}
	if c.Worker.MetricsPort <= 0 || c.Worker.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("worker metrics_port out of range: %d", c.Worker.MetricsPort))
	}

	return errors.Join(errs...)
}

// ValidateCronSchedule checks a standard five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return errors.New("invalid cron schedule: cannot be empty")
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}
