package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publications-api/internal/infra/db"
)

func validConfig() *Config {
	c := Default()
	c.Database.URL = "postgres://app@localhost:5432/pubs?sslmode=disable"
	return c
}

func TestDefault_NeedsOnlyDatabaseURL(t *testing.T) {
	assert.ErrorIs(t, Default().Validate(), ErrMissingDatabaseURL)
	assert.NoError(t, validConfig().Validate())
}

func TestDefault_PoolMatchesDatabaseDefaults(t *testing.T) {
	assert.Equal(t, db.DefaultConnectionConfig(), Default().Database.Pool())
}

func TestDatabaseConfig_Pool(t *testing.T) {
	c := validConfig()
	c.Database.MaxOpenConns = 7
	c.Database.ConnMaxIdleTime = time.Minute

	pool := c.Database.Pool()
	assert.Equal(t, 7, pool.MaxOpenConns)
	assert.Equal(t, c.Database.MaxIdleConns, pool.MaxIdleConns)
	assert.Equal(t, time.Minute, pool.ConnMaxIdleTime)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max open conns", func(c *Config) { c.Database.MaxOpenConns = 0 }},
		{"idle above open", func(c *Config) { c.Database.MaxIdleConns = 100 }},
		{"negative rps", func(c *Config) { c.RateLimit.RPS = -1 }},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }},
		{"bad cron", func(c *Config) { c.Worker.CronSchedule = "every minute" }},
		{"bad timezone", func(c *Config) { c.Worker.Timezone = "Mars/Olympus" }},
		{"bad metrics port", func(c *Config) { c.Worker.MetricsPort = 70000 }},
		{"request timeout too short", func(c *Config) { c.Server.RequestTimeout = time.Millisecond }},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidate_RateLimitDisabledSkipsItsChecks(t *testing.T) {
	c := validConfig()
	c.RateLimit.Enabled = false
	c.RateLimit.RPS = 0
	assert.NoError(t, c.Validate())
}

func TestValidate_JoinsErrors(t *testing.T) {
	c := Default()
	c.Worker.CronSchedule = ""
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "cron")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@db/pubs")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("RATELIMIT_RPS", "2.5")
	t.Setenv("RATELIMIT_ENABLED", "false")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("WORKER_CRON_SCHEDULE", "*/5 * * * *")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	c := Default()
	c.ApplyEnv()

	assert.Equal(t, "postgres://env@db/pubs", c.Database.URL)
	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, 50, c.Database.MaxOpenConns)
	assert.Equal(t, 2.5, c.RateLimit.RPS)
	assert.False(t, c.RateLimit.Enabled)
	assert.True(t, c.Tracing.Enabled)
	assert.Equal(t, "*/5 * * * *", c.Worker.CronSchedule)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.Server.CORSAllowedOrigins)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1.2.3"
server:
  addr: ":7000"
  request_timeout: 3s
database:
  url: postgres://file@db/pubs
  max_open_conns: 5
  max_idle_conns: 2
rate_limit:
  rps: 1
worker:
  cron_schedule: "0 * * * *"
`), 0o600))

	c := Default()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, "1.2.3", c.Version)
	assert.Equal(t, ":7000", c.Server.Addr)
	assert.Equal(t, 3*time.Second, c.Server.RequestTimeout)
	assert.Equal(t, "postgres://file@db/pubs", c.Database.URL)
	assert.Equal(t, 5, c.Database.MaxOpenConns)
	assert.Equal(t, 1.0, c.RateLimit.RPS)
	assert.Equal(t, 20, c.RateLimit.Burst, "keys absent from the file keep defaults")
	assert.Equal(t, "0 * * * *", c.Worker.CronSchedule)
	assert.NoError(t, c.Validate())
}

func TestLoadFile_Errors(t *testing.T) {
	c := Default()
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))
	assert.Error(t, c.LoadFile(path))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  url: postgres://file@db/pubs\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATABASE_URL", "postgres://env@db/pubs")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@db/pubs", c.Database.URL)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_URL=postgres://dotenv@db/pubs\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv never overrides variables that are already set, even to "".
	for _, key := range []string{"DATABASE_URL", "CONFIG_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://dotenv@db/pubs", c.Database.URL)
}
