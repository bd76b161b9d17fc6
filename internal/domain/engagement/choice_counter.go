package engagement

import "time"

// ChoiceCounter tallies how often a path was chosen. (StoryID, PathTitle, Title) is
// unique; UserID is written only when the row is first inserted.
type ChoiceCounter struct {
	ID        string    `gorm:"type:char(24);primaryKey" json:"id"`
	StoryID   string    `gorm:"type:char(24);not null;index:idx_choice_counter_key,unique,priority:1" json:"storyId"`
	PathTitle string    `gorm:"column:path_title;not null;index:idx_choice_counter_key,unique,priority:2" json:"pathTitle"`
	Title     string    `gorm:"column:title;not null;default:'';index:idx_choice_counter_key,unique,priority:3" json:"title"`
	Count     int64     `gorm:"column:count;not null" json:"count"`
	UserID    *string   `gorm:"column:user_id" json:"userId,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (ChoiceCounter) TableName() string { return "choice_counter" }
