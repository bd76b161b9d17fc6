package app

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func loadWith(t *testing.T, vars map[string]string) (Config, error) {
	t.Helper()
	return parseConfig(env.Options{Environment: vars})
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("Port: want=5000 got=%q", cfg.Port)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("Addr: want=:5000 got=%q", cfg.Addr())
	}
	if cfg.Postgres.Name != "storytelling" || !cfg.Postgres.AutoMigrate {
		t.Fatalf("Postgres: got=%+v", cfg.Postgres)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.TTL != 30*time.Second {
		t.Fatalf("Redis: got=%+v", cfg.Redis)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins: got=%v", cfg.CORSOrigins)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout: want=10s got=%v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"PORT":                "8080",
		"POSTGRES_DSN":        "postgres://u:p@db:5432/x",
		"REDIS_ADDR":          "redis:6379",
		"ANALYTICS_CACHE_TTL": "2m",
		"CORS_ALLOW_ORIGINS":  "http://a.test,http://b.test",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr: want=:8080 got=%q", cfg.Addr())
	}
	if got := cfg.postgres().ConnString(); got != "postgres://u:p@db:5432/x" {
		t.Fatalf("ConnString: got=%q", got)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.TTL != 2*time.Minute {
		t.Fatalf("Redis: got=%+v", cfg.Redis)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins: got=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	if _, err := loadWith(t, map[string]string{"SHUTDOWN_TIMEOUT": "soon"}); err == nil {
		t.Fatalf("expected parse error for SHUTDOWN_TIMEOUT")
	}
}
