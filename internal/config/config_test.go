package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  port: 5433
  read_host: replica
  user: testuser
  password: testpass
  dbname: testdb
redis:
  enabled: true
  addr: "localhost:6379"
  db: 2
cache:
  ttl: 1h
  memory_size: 500
nats:
  enabled: true
  url: "nats://localhost:4222"
  subject: "test.awards"
given_count_sweeper:
  enabled: true
  interval: 1m
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "postgres", cfg.Database.Driver)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "replica", cfg.Database.ReadHost)
				assert.True(t, cfg.Redis.Enabled)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, time.Hour, cfg.Cache.TTL)
				assert.Equal(t, 500, cfg.Cache.MemorySize)
				assert.True(t, cfg.NATS.Enabled)
				assert.Equal(t, "test.awards", cfg.NATS.Subject)
				assert.True(t, cfg.GivenCountSweeper.Enabled)
				assert.Equal(t, time.Minute, cfg.GivenCountSweeper.Interval)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.False(t, cfg.Redis.Enabled)
				assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
				assert.Equal(t, 10000, cfg.Cache.MemorySize)
				assert.False(t, cfg.NATS.Enabled)
				assert.Equal(t, "AWARD_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "awards.granted", cfg.NATS.Subject)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.False(t, cfg.GivenCountSweeper.Enabled)
				assert.Equal(t, 15*time.Minute, cfg.GivenCountSweeper.Interval)
			},
		},
		{
			name: "sqlite driver",
			configFile: `
database:
  driver: sqlite
  sqlite_path: /tmp/awards.db
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Equal(t, "/tmp/awards.db", cfg.Database.DSN())
				assert.Empty(t, cfg.Database.ReadDSN())
			},
		},
		{
			name: "sqlite driver without path",
			configFile: `
database:
  driver: sqlite
`,
			expectError: true,
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "unsupported driver",
			configFile: `
database:
  driver: mysql
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadNotifierConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: localhost
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  consumer_name: "mailer"
smtp:
  host: smtp.example.com
  from: "awards@example.com"
worker:
  pool_size: 8
`)

		cfg, err := LoadNotifierConfig(path, t.TempDir())
		require.NoError(t, err)

		assert.True(t, cfg.NATS.Enabled)
		assert.Equal(t, "mailer", cfg.NATS.ConsumerName)
		assert.Equal(t, "AWARD_EVENTS", cfg.NATS.StreamName)
		assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
		assert.Equal(t, 5, cfg.NATS.MaxDeliver)
		assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
		assert.Equal(t, 587, cfg.SMTP.Port)
		assert.Equal(t, uint64(3), cfg.SMTP.MaxRetries)
		assert.Equal(t, "Feral File", cfg.SMTP.SiteName)
		assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
		assert.Equal(t, 64, cfg.Worker.WorkerQueueSize)
	})

	t.Run("missing smtp host", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: localhost
  dbname: testdb
nats:
  url: "nats://localhost:4222"
smtp:
  from: "awards@example.com"
`)

		_, err := LoadNotifierConfig(path, t.TempDir())
		assert.ErrorContains(t, err, "smtp.host")
	})

	t.Run("missing nats url", func(t *testing.T) {
		path := writeConfig(t, `
database:
  host: localhost
  dbname: testdb
smtp:
  host: smtp.example.com
  from: "awards@example.com"
`)

		_, err := LoadNotifierConfig(path, t.TempDir())
		assert.ErrorContains(t, err, "nats.url")
	})
}

func TestLoadSweeperConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  dbname: testdb
given_count_sweeper:
  interval: 30m
`)

	cfg, err := LoadSweeperConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.GivenCountSweeper.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.GivenCountSweeper.Interval)
	assert.Equal(t, 5*time.Minute, cfg.GivenCountSweeper.RetryMaxElapsed)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestLoadCLIConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  sqlite_path: awards.db
`)

	cfg, err := LoadCLIConfig(path, t.TempDir())
	require.NoError(t, err)

	opts := cfg.Database.OpenOptions(true)
	assert.Equal(t, "sqlite", opts.Driver)
	assert.Equal(t, "awards.db", opts.DSN)
	assert.Empty(t, opts.ReadDSN)
	assert.True(t, opts.Debug)
	assert.Equal(t, "awardctl", cfg.NATS.ConnectionName)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
		{
			name: "sqlite path",
			config: DatabaseConfig{
				Driver:     "sqlite",
				SQLitePath: "data/awards.db",
			},
			expected: "data/awards.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "db",
		SSLMode:  "disable",
	}
	assert.Empty(t, cfg.ReadDSN())

	cfg.ReadHost = "replica"
	assert.Equal(t, "host=replica port=5432 user=u password=p dbname=db sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 6432
	assert.Equal(t, "host=replica port=6432 user=u password=p dbname=db sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// Viper uses the AWARDS_ prefix
	envContent := `AWARDS_DEBUG=true
AWARDS_DATABASE_HOST=env-host
AWARDS_DATABASE_PORT=3306
AWARDS_DATABASE_DBNAME=env-db
AWARDS_REDIS_ENABLED=true
AWARDS_REDIS_ADDR=redis:6379
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	t.Cleanup(func() {
		for _, key := range []string{
			"AWARDS_DEBUG",
			"AWARDS_DATABASE_HOST",
			"AWARDS_DATABASE_PORT",
			"AWARDS_DATABASE_DBNAME",
			"AWARDS_REDIS_ENABLED",
			"AWARDS_REDIS_ADDR",
		} {
			_ = os.Unsetenv(key)
		}
	})

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)

	// The .env file is loaded via godotenv.Overload, so its values win over the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}
