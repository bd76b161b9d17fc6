package testutil

import (
	"context"
	"testing"
	"time"

	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
	"gorm.io/gorm"
)

func SeedStory(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, pathTitles ...string) *types.Story {
	tb.Helper()
	now := time.Now().UTC()
	s := &types.Story{
		ID:        objectid.New(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, pt := range pathTitles {
		s.Paths = append(s.Paths, &types.StoryPath{
			ID:        objectid.New(),
			Position:  i,
			PathTitle: pt,
			CreatedAt: now,
		})
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed story: %v", err)
	}
	return s
}

func SeedInteraction(tb testing.TB, ctx context.Context, tx *gorm.DB, storyID, pathTitle string, timeSpent int64, at time.Time) *types.InteractionEvent {
	tb.Helper()
	ev := &types.InteractionEvent{
		ID:        objectid.New(),
		StoryID:   storyID,
		PathTitle: pathTitle,
		TimeSpent: timeSpent,
		CreatedAt: at,
	}
	if err := tx.WithContext(ctx).Create(ev).Error; err != nil {
		tb.Fatalf("seed interaction: %v", err)
	}
	return ev
}

// ChoiceCounters returns every counter row of a story ordered by path and title.
func ChoiceCounters(tb testing.TB, ctx context.Context, tx *gorm.DB, storyID string) []*types.ChoiceCounter {
	tb.Helper()
	var out []*types.ChoiceCounter
	if err := tx.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("path_title ASC").
		Order("title ASC").
		Find(&out).Error; err != nil {
		tb.Fatalf("load choice counters: %v", err)
	}
	return out
}

// ChoiceCounter returns the counter row for one key, or nil when it does not exist.
func ChoiceCounter(tb testing.TB, ctx context.Context, tx *gorm.DB, storyID, pathTitle, title string) *types.ChoiceCounter {
	tb.Helper()
	var out []*types.ChoiceCounter
	if err := tx.WithContext(ctx).
		Where("story_id = ? AND path_title = ? AND title = ?", storyID, pathTitle, title).
		Limit(1).
		Find(&out).Error; err != nil {
		tb.Fatalf("load choice counter: %v", err)
	}
	if len(out) == 0 {
		return nil
	}
	return out[0]
}
