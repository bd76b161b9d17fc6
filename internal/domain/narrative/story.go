package narrative

import (
	"time"

	"gorm.io/datatypes"
)

type Story struct {
	ID          string       `gorm:"type:char(24);primaryKey" json:"id"`
	Title       string       `gorm:"column:title;not null" json:"title"`
	Description string       `gorm:"column:description;type:text" json:"description,omitempty"`
	Paths       []*StoryPath `gorm:"foreignKey:StoryID;references:ID;constraint:OnDelete:CASCADE" json:"paths"`
	CreatedAt   time.Time    `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updatedAt"`
}

func (Story) TableName() string { return "story" }

// PathTitles returns the story's path titles in story order.
func (s *Story) PathTitles() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Paths))
	for _, p := range s.Paths {
		if p == nil {
			continue
		}
		out = append(out, p.PathTitle)
	}
	return out
}

type StoryPath struct {
	ID        string `gorm:"type:char(24);primaryKey" json:"-"`
	StoryID   string `gorm:"type:char(24);not null;index:idx_story_path_title,unique,priority:1;index:idx_story_path_position,priority:1" json:"-"`
	Position  int    `gorm:"column:position;not null;index:idx_story_path_position,priority:2" json:"position"`
	PathTitle string `gorm:"column:path_title;not null;index:idx_story_path_title,unique,priority:2" json:"pathTitle"`
	Content   string `gorm:"column:content;type:text" json:"content,omitempty"`
	// Options lists the path titles a reader can branch to from this path.
	Options   datatypes.JSONSlice[string] `gorm:"column:options;type:jsonb" json:"options,omitempty"`
	CreatedAt time.Time                   `gorm:"not null" json:"-"`
}

func (StoryPath) TableName() string { return "story_path" }
