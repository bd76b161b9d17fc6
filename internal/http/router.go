package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/neharvard/interactive-storytelling-server/internal/http/handlers"
	httpMW "github.com/neharvard/interactive-storytelling-server/internal/http/middleware"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	HealthHandler      *httpH.HealthHandler
	StoryHandler       *httpH.StoryHandler
	InteractionHandler *httpH.InteractionHandler
	ChoiceHandler      *httpH.ChoiceHandler
	AnalyticsHandler   *httpH.AnalyticsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Stories
		if cfg.StoryHandler != nil {
			api.POST("/stories", cfg.StoryHandler.CreateStory)
			api.GET("/stories", cfg.StoryHandler.ListStories)
			api.GET("/stories/:id", cfg.StoryHandler.GetStory)
		}

		// Interactions
		if cfg.InteractionHandler != nil {
			api.POST("/interactions", cfg.InteractionHandler.RecordInteraction)
			api.GET("/stories/:id/interactions", cfg.InteractionHandler.ListStoryInteractions)
		}

		// Choices
		if cfg.ChoiceHandler != nil {
			api.POST("/choices", cfg.ChoiceHandler.RecordChoice)
		}

		// Analytics
		if cfg.AnalyticsHandler != nil {
			api.GET("/stories/:id/popularity", cfg.AnalyticsHandler.GetPopularity)
			api.GET("/stories/:id/time-spent", cfg.AnalyticsHandler.GetTimeSpent)
		}
	}

	return r
}
