package app

import (
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
	"github.com/neharvard/interactive-storytelling-server/internal/services"
)

type Services struct {
	Story       services.StoryService
	Interaction services.InteractionService
	Choice      services.ChoiceService
	Analytics   services.AnalyticsService
}

func wireServices(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	// A nil *redis.AnalyticsCache must not leak into the interface as a typed nil.
	var cache services.AnalyticsCache
	if clients.AnalyticsCache != nil {
		cache = clients.AnalyticsCache
	}
	clock := services.NewClock()

	return Services{
		Story:       services.NewStoryService(db, log, metrics, clock, reposet.Story),
		Interaction: services.NewInteractionService(db, log, metrics, clock, cache, reposet.Interaction),
		Choice:      services.NewChoiceService(db, log, metrics, cache, reposet.ChoiceCounter),
		Analytics:   services.NewAnalyticsService(db, log, metrics, cache, reposet.Story, reposet.Interaction, reposet.ChoiceCounter),
	}
}
