package app

import (
	"github.com/gin-gonic/gin"

	httpX "github.com/neharvard/interactive-storytelling-server/internal/http"
	httpH "github.com/neharvard/interactive-storytelling-server/internal/http/handlers"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type Handlers struct {
	Health      *httpH.HealthHandler
	Story       *httpH.StoryHandler
	Interaction *httpH.InteractionHandler
	Choice      *httpH.ChoiceHandler
	Analytics   *httpH.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, services Services) (Handlers, error) {
	log.Info("Wiring handlers...")
	if err := httpH.RegisterValidators(); err != nil {
		return Handlers{}, err
	}
	return Handlers{
		Health:      httpH.NewHealthHandler(),
		Story:       httpH.NewStoryHandler(services.Story),
		Interaction: httpH.NewInteractionHandler(services.Interaction),
		Choice:      httpH.NewChoiceHandler(services.Choice),
		Analytics:   httpH.NewAnalyticsHandler(services.Analytics),
	}, nil
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers) *gin.Engine {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.ServiceName
	}
	return httpX.NewRouter(httpX.RouterConfig{
		Log:                log,
		Metrics:            metrics,
		ServiceName:        serviceName,
		CORSOrigins:        cfg.CORSOrigins,
		HealthHandler:      handlers.Health,
		StoryHandler:       handlers.Story,
		InteractionHandler: handlers.Interaction,
		ChoiceHandler:      handlers.Choice,
		AnalyticsHandler:   handlers.Analytics,
	})
}
