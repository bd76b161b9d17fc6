package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/db"
	httpX "github.com/neharvard/interactive-storytelling-server/internal/http"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
	Metrics  *observability.Metrics

	pg           *db.PostgresService
	server       *httpX.Server
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if isProdMode(cfg.LogMode) {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.otel())
	metrics := observability.NewMetrics()

	pg, err := db.NewPostgresService(cfg.postgres(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if cfg.Postgres.AutoMigrate {
		if err := pg.AutoMigrateAll(); err != nil {
			_ = pg.Close()
			log.Sync()
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
	}
	theDB := pg.DB()

	clientset := wireClients(ctx, log, cfg)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, metrics, reposet, clientset)
	handlerset, err := wireHandlers(log, serviceset)
	if err != nil {
		clientset.Close()
		_ = pg.Close()
		log.Sync()
		return nil, fmt.Errorf("wire handlers: %w", err)
	}
	router := wireRouter(log, cfg, metrics, handlerset)

	srv := httpX.NewServer(httpX.ServerConfig{
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}, log, router)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clientset,
		Metrics:      metrics,
		pg:           pg,
		server:       srv,
		otelShutdown: otelShutdown,
	}, nil
}

// Run blocks until ctx is cancelled or the listener fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Story Telling Platform is Running", "addr", a.Cfg.Addr())
	return a.server.Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	a.Clients.Close()
	if a.pg != nil {
		if err := a.pg.Close(); err != nil && a.Log != nil {
			a.Log.Warn("postgres close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

func isProdMode(mode string) bool {
	return mode == "prod" || mode == "production"
}
