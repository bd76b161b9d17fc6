package app

import (
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type Repos struct {
	Story         repos.StoryRepo
	Interaction   repos.InteractionEventRepo
	ChoiceCounter repos.ChoiceCounterRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Story:         repos.NewStoryRepo(db, log),
		Interaction:   repos.NewInteractionEventRepo(db, log),
		ChoiceCounter: repos.NewChoiceCounterRepo(db, log),
	}
}
