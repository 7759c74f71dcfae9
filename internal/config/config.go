package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Ledger instances. Each one is an isolated collection of transactions.
const (
	InstanceMain = "main"
	InstanceTest = "test"
)

// Storage backends.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Postgres drivers registered by the server binary.
const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

// Config holds the application, storage, cache, messaging and logging settings.
type Config struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost"`
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`
	GRPCPort string `env:"GRPC_PORT"`

	Instance           string `env:"LEDGER_INSTANCE" envDefault:"main"`
	Backend            string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	StoreTimeoutSecond int    `env:"STORE_TIMEOUT_SECOND" envDefault:"5"`

	PGDriver       string `env:"POSTGRES_DRIVER" envDefault:"pgx"`
	PGHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PGPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PGUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PGPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PGDB           string `env:"POSTGRES_DB" envDefault:"database"`
	PGMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PGMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	RedisHost         string `env:"REDIS_HOST"`
	RedisPort         int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisExpSecond    int    `env:"REDIS_EXP_SECOND" envDefault:"60"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"transfers"`
}

// Load reads environment variables from the file at path, if it exists, and
// parses the process environment into a Config. Variables already set in the
// environment take precedence over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unknown instance, backend and driver names.
func (c *Config) Validate() error {
	switch c.Instance {
	case InstanceMain, InstanceTest:
	default:
		return fmt.Errorf("unknown ledger instance %q", c.Instance)
	}
	switch c.Backend {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	switch c.PGDriver {
	case DriverPgx, DriverPq:
	default:
		return fmt.Errorf("unknown postgres driver %q", c.PGDriver)
	}
	if c.StoreTimeoutSecond <= 0 {
		return fmt.Errorf("store timeout must be positive, got %d", c.StoreTimeoutSecond)
	}
	return nil
}

// TableName is the collection backing the configured instance.
func (c *Config) TableName() string {
	if c.Instance == InstanceTest {
		return "transactions_test"
	}
	return "transactions"
}

// DSN is the postgres connection URL.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr is empty when the balance cache is disabled.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// CachePrefix namespaces cached balances by instance.
func (c *Config) CachePrefix() string {
	return "gw-transfer-ledger:" + c.Instance
}

func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSecond) * time.Second
}

func (c *Config) RedisExp() time.Duration {
	return time.Duration(c.RedisExpSecond) * time.Second
}
