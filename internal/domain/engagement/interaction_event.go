package engagement

import "time"

// InteractionEvent is one reader traversal of a story path. Rows are append-only.
type InteractionEvent struct {
	ID        string    `gorm:"type:char(24);primaryKey" json:"id"`
	StoryID   string    `gorm:"type:char(24);not null;index:idx_interaction_event_story,priority:1" json:"storyId"`
	PathTitle string    `gorm:"column:path_title;not null" json:"pathTitle"`
	Title     *string   `gorm:"column:title" json:"title,omitempty"`
	TimeSpent int64     `gorm:"column:time_spent;not null" json:"timeSpent"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_interaction_event_story,priority:2" json:"timestamp"`
}

func (InteractionEvent) TableName() string { return "interaction_event" }

// EnrichedInteraction is an event joined with its story's title.
type EnrichedInteraction struct {
	ID         string    `json:"id"`
	PathTitle  string    `json:"pathTitle"`
	TimeSpent  int64     `json:"timeSpent"`
	Timestamp  time.Time `gorm:"column:created_at" json:"timestamp"`
	StoryTitle string    `json:"storyTitle"`
}
