package repos

import (
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos/engagement"
	"github.com/neharvard/interactive-storytelling-server/internal/data/repos/narrative"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type StoryRepo = narrative.StoryRepo

type InteractionEventRepo = engagement.InteractionEventRepo
type ChoiceCounterRepo = engagement.ChoiceCounterRepo

func NewStoryRepo(db *gorm.DB, baseLog *logger.Logger) StoryRepo {
	return narrative.NewStoryRepo(db, baseLog)
}

func NewInteractionEventRepo(db *gorm.DB, baseLog *logger.Logger) InteractionEventRepo {
	return engagement.NewInteractionEventRepo(db, baseLog)
}
func NewChoiceCounterRepo(db *gorm.DB, baseLog *logger.Logger) ChoiceCounterRepo {
	return engagement.NewChoiceCounterRepo(db, baseLog)
}
