package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Arbiter   ArbiterConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Mode string `envconfig:"GIN_MODE" default:"release"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	// Brokers empty disables event publishing.
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"group-booking-events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
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

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"group-booking-arbiter"`

	// TokenDuration applies to tokens minted by this service (tests and local tooling).
	TokenDuration time.Duration `envconfig:"JWT_TOKEN_DURATION" default:"1h"`
}

type ArbiterConfig struct {
	AcceptThreshold      float64       `envconfig:"ARBITER_ACCEPT_THRESHOLD" default:"0"`
	DeadBand             float64       `envconfig:"ARBITER_DEAD_BAND" default:"0.05"`
	DefaultSlotCapacity  int           `envconfig:"ARBITER_DEFAULT_SLOT_CAPACITY" default:"40"`
	DefaultCostRatio     float64       `envconfig:"ARBITER_DEFAULT_COST_RATIO" default:"0.35"`
	TrailingWeeks        int           `envconfig:"ARBITER_TRAILING_WEEKS" default:"8"`
	DefaultWalkinSpend   float64       `envconfig:"ARBITER_DEFAULT_WALKIN_SPEND" default:"25"`
	DefaultOccupancyRate float64       `envconfig:"ARBITER_DEFAULT_OCCUPANCY_RATE" default:"0.5"`
	ProcessTimeout       time.Duration `envconfig:"ARBITER_PROCESS_TIMEOUT" default:"3s"`
	LedgerMaxAttempts    int           `envconfig:"ARBITER_LEDGER_MAX_ATTEMPTS" default:"5"`
	LedgerBackoffBase    time.Duration `envconfig:"ARBITER_LEDGER_BACKOFF_BASE" default:"5ms"`
	ExpiryInterval       time.Duration `envconfig:"ARBITER_EXPIRY_INTERVAL" default:"15m"`
	ExpiryBatchSize      int           `envconfig:"ARBITER_EXPIRY_BATCH_SIZE" default:"200"`
	CacheTTL             time.Duration `envconfig:"ARBITER_CACHE_TTL" default:"1h"`
}

type RateLimitConfig struct {
	// ProcessPerSecond limits processing calls per merchant.
	ProcessPerSecond float64 `envconfig:"RATE_LIMIT_PROCESS_PER_SECOND" default:"5"`
	ProcessBurst     int     `envconfig:"RATE_LIMIT_PROCESS_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

// LoadConfig reads .env files (when present) into the environment, then processes it.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Mode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{Addr: "localhost:16379"},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:        "test-secret-key-for-testing-only",
			Issuer:        "group-booking-arbiter",
			TokenDuration: time.Hour,
		},
		Arbiter: ArbiterConfig{
			DeadBand:             0.05,
			DefaultSlotCapacity:  40,
			DefaultCostRatio:     0.35,
			TrailingWeeks:        8,
			DefaultWalkinSpend:   25,
			DefaultOccupancyRate: 0.5,
			ProcessTimeout:       3 * time.Second,
			LedgerMaxAttempts:    5,
			LedgerBackoffBase:    time.Millisecond,
			ExpiryInterval:       time.Minute,
			ExpiryBatchSize:      50,
			CacheTTL:             time.Minute,
		},
		RateLimit: RateLimitConfig{
			ProcessPerSecond: 100,
			ProcessBurst:     100,
		},
	}
}
