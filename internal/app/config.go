package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/neharvard/interactive-storytelling-server/internal/data/db"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
)

type Config struct {
	LogMode        string `env:"LOG_MODE" envDefault:"development"`
	Port           string `env:"PORT" envDefault:"5000"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"storytelling-api"`
	ServiceVersion string `env:"SERVICE_VERSION"`

	Postgres    PostgresConfig
	Redis       RedisConfig
	HTTP        HTTPConfig
	Otel        OtelConfig
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

type PostgresConfig struct {
	DSN         string `env:"POSTGRES_DSN"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        string `env:"POSTGRES_PORT" envDefault:"5432"`
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Name        string `env:"POSTGRES_NAME" envDefault:"storytelling"`
	AutoMigrate bool   `env:"POSTGRES_AUTO_MIGRATE" envDefault:"true"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"ANALYTICS_CACHE_TTL" envDefault:"30s"`
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type OtelConfig struct {
	Enabled     bool              `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string            `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool              `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	Headers     map[string]string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	SampleRatio float64           `env:"OTEL_SAMPLER_RATIO" envDefault:"1"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.Redis.TTL < 0 {
		return errors.New("ANALYTICS_CACHE_TTL must not be negative")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c Config) postgres() db.PostgresConfig {
	return db.PostgresConfig{
		DSN:      c.Postgres.DSN,
		Host:     c.Postgres.Host,
		Port:     c.Postgres.Port,
		User:     c.Postgres.User,
		Password: c.Postgres.Password,
		Name:     c.Postgres.Name,
	}
}

func (c Config) otel() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: c.ServiceName,
		Environment: c.LogMode,
		Version:     c.ServiceVersion,
		Endpoint:    c.Otel.Endpoint,
		Insecure:    c.Otel.Insecure,
		Headers:     c.Otel.Headers,
		SampleRatio: c.Otel.SampleRatio,
	}
}
