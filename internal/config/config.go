package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-awards/internal/store"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	SQLitePath      string        `mapstructure:"sqlite_path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// RedisConfig holds Redis configuration. When disabled the unseen counts live in process memory.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig holds unseen count cache configuration
type CacheConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MemorySize int           `mapstructure:"memory_size"` // Entries kept by the in-process backend
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	Subject        string        `mapstructure:"subject"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
	MaxAge         time.Duration `mapstructure:"max_age"`
	RetryDelay     time.Duration `mapstructure:"retry_delay"`
}

// SMTPConfig holds outgoing e-mail configuration
type SMTPConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	SiteName   string `mapstructure:"site_name"`
	MaxRetries uint64 `mapstructure:"max_retries"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins limits CORS; empty allows any origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// GivenCountSweeperConfig holds configuration for the given count repair loop
type GivenCountSweeperConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Interval        time.Duration `mapstructure:"interval"`
	RetryMaxElapsed time.Duration `mapstructure:"retry_max_elapsed"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig        `mapstructure:",squash"`
	Server            ServerConfig            `mapstructure:"server"`
	Database          DatabaseConfig          `mapstructure:"database"`
	Redis             RedisConfig             `mapstructure:"redis"`
	Cache             CacheConfig             `mapstructure:"cache"`
	NATS              NATSConfig              `mapstructure:"nats"`
	GivenCountSweeper GivenCountSweeperConfig `mapstructure:"given_count_sweeper"`
}

// NotifierConfig holds configuration for the award notifier
type NotifierConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	SMTP       SMTPConfig     `mapstructure:"smtp"`
	Worker     WorkerConfig   `mapstructure:"worker"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig        `mapstructure:",squash"`
	Database          DatabaseConfig          `mapstructure:"database"`
	GivenCountSweeper GivenCountSweeperConfig `mapstructure:"given_count_sweeper"`
}

// CLIConfig holds configuration for the admin CLI
type CLIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Cache      CacheConfig    `mapstructure:"cache"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setCacheDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.connection_name", "awards-api")
	v.SetDefault("given_count_sweeper.enabled", false)
	v.SetDefault("given_count_sweeper.interval", "15m")
	v.SetDefault("given_count_sweeper.retry_max_elapsed", "5m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadNotifierConfig loads configuration for the award notifier
func LoadNotifierConfig(configFile string, envPath string) (*NotifierConfig, error) {
	v := configureViper("notifier", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.enabled", true)
	v.SetDefault("nats.connection_name", "awards-notifier")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.site_name", "Feral File")
	v.SetDefault("smtp.max_retries", 3)
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("worker.queue_size", 64)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg NotifierConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	if cfg.NATS.URL == "" {
		return nil, errors.New("nats.url is required")
	}
	if cfg.SMTP.Host == "" {
		return nil, errors.New("smtp.host is required")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp.from is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("given_count_sweeper.enabled", true)
	v.SetDefault("given_count_sweeper.interval", "15m")
	v.SetDefault("given_count_sweeper.retry_max_elapsed", "5m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadCLIConfig loads configuration for the admin CLI
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("awardctl", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 2)
	v.SetDefault("database.max_idle_conns", 1)
	setCacheDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.connection_name", "awardctl")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", store.DriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setCacheDefaults(v *viper.Viper) {
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.memory_size", 10000)
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "AWARD_EVENTS")
	v.SetDefault("nats.subject", "awards.granted")
	v.SetDefault("nats.consumer_name", "award-notifier")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("nats.max_age", "168h")
	v.SetDefault("nats.retry_delay", "30s")
}

// readConfig reads the config file. A missing file is fine; environment variables still apply.
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("AWARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.sqlite_path",
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Redis
		"redis.enabled",
		"redis.addr",
		"redis.password",
		"redis.db",
		// Cache
		"cache.ttl",
		"cache.memory_size",
		// NATS
		"nats.enabled",
		"nats.url",
		"nats.stream_name",
		"nats.subject",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		"nats.max_age",
		"nats.retry_delay",
		// SMTP
		"smtp.host",
		"smtp.port",
		"smtp.username",
		"smtp.password",
		"smtp.from",
		"smtp.site_name",
		"smtp.max_retries",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Given count sweeper
		"given_count_sweeper.enabled",
		"given_count_sweeper.interval",
		"given_count_sweeper.retry_max_elapsed",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Validate checks the fields the selected driver needs
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case store.DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("database.sqlite_path is required for the sqlite driver")
		}
	case store.DriverPostgres, "":
		if c.Host == "" {
			return errors.New("database.host is required")
		}
		if c.DBName == "" {
			return errors.New("database.dbname is required")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Driver)
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == store.DriverSQLite {
		return c.SQLitePath
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	if c.ReadHost == "" || c.Driver == store.DriverSQLite {
		return ""
	}

	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}

// OpenOptions returns the options used to open the ledger database
func (c *DatabaseConfig) OpenOptions(debug bool) store.OpenOptions {
	return store.OpenOptions{
		Driver:  c.Driver,
		DSN:     c.DSN(),
		ReadDSN: c.ReadDSN(),
		Debug:   debug,
	}
}
