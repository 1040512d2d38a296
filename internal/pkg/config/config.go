package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Ledger       LedgerConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Cancellation CancellationConfig
	Telemetry    TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type StoreConfig struct {
	Driver   string `envconfig:"BOOKING_STORE" default:"memory"`
	SeedDemo bool   `envconfig:"BOOKING_STORE_SEED_DEMO" default:"true"`
}

// DB settings are only read when the postgres store is selected.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"travel_loyalty"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// An empty BaseURL selects the in-memory ledger used by the demo storefront.
type LedgerConfig struct {
	BaseURL        string        `envconfig:"LEDGER_BASE_URL" default:""`
	Program        string        `envconfig:"LEDGER_PROGRAM" default:"travel-rewards"`
	APIToken       string        `envconfig:"LEDGER_API_TOKEN" default:""`
	RequestTimeout time.Duration `envconfig:"LEDGER_REQUEST_TIMEOUT" default:"15s"`
}

func (c LedgerConfig) IsRemote() bool {
	return c.BaseURL != ""
}

// An empty Addr falls back to the in-process booking lock.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_CANCELLATION_TOPIC" default:"booking.cancellations"`
}

const (
	FailedReversalCancel = "cancel"
	FailedReversalHold   = "hold"
)

type CancellationConfig struct {
	StepTimeout          time.Duration `envconfig:"CANCELLATION_STEP_TIMEOUT" default:"10s"`
	LockTTL              time.Duration `envconfig:"CANCELLATION_LOCK_TTL" default:"2m"`
	FailedReversalPolicy string        `envconfig:"CANCELLATION_FAILED_REVERSAL_POLICY" default:"cancel"`
	DefaultReason        string        `envconfig:"CANCELLATION_DEFAULT_REASON" default:"Cancelled at member request"`
}

type TelemetryConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"travel-loyalty-booking"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("unsupported BOOKING_STORE %q", c.Store.Driver)
	}
	switch c.Cancellation.FailedReversalPolicy {
	case FailedReversalCancel, FailedReversalHold:
	default:
		return fmt.Errorf("unsupported CANCELLATION_FAILED_REVERSAL_POLICY %q", c.Cancellation.FailedReversalPolicy)
	}
	if c.Cancellation.StepTimeout <= 0 {
		return fmt.Errorf("CANCELLATION_STEP_TIMEOUT must be positive")
	}
	if c.Cancellation.LockTTL <= 0 {
		return fmt.Errorf("CANCELLATION_LOCK_TTL must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:   StoreMemory,
			SeedDemo: false,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Ledger: LedgerConfig{
			Program:        "travel-rewards",
			RequestTimeout: 5 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: "booking.cancellations",
		},
		Cancellation: CancellationConfig{
			StepTimeout:          2 * time.Second,
			LockTTL:              30 * time.Second,
			FailedReversalPolicy: FailedReversalCancel,
			DefaultReason:        "Cancelled at member request",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "travel-loyalty-booking-test",
		},
	}
}
