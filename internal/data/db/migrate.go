package db

import (
	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Stories
		&types.Story{},
		&types.StoryPath{},

		// Reader engagement
		&types.InteractionEvent{},
		&types.ChoiceCounter{},
	)
}
