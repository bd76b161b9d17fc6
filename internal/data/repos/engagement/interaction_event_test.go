package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos/testutil"
	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
)

func TestInteractionEventRepoAppendAndAggregate(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewInteractionEventRepo(db, testutil.Logger(t))

	story := testutil.SeedStory(t, ctx, db, "Forest", "A", "B")
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, ev := range []struct {
		path  string
		spent int64
	}{{"A", 10}, {"A", 20}, {"B", 7}} {
		row := &types.InteractionEvent{
			ID:        objectid.New(),
			StoryID:   story.ID,
			PathTitle: ev.path,
			TimeSpent: ev.spent,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Append(dbc, row); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	aggs, err := repo.AggregateTimeByStoryID(dbc, story.ID)
	if err != nil {
		t.Fatalf("AggregateTimeByStoryID: %v", err)
	}
	byPath := map[string]types.PathTimeAggregate{}
	for _, a := range aggs {
		byPath[a.PathTitle] = a
	}
	if a := byPath["A"]; a.AverageTimeSpent != 15 || a.TotalTimeSpent != 30 {
		t.Fatalf("A: want avg=15 total=30 got avg=%v total=%v", a.AverageTimeSpent, a.TotalTimeSpent)
	}
	if b := byPath["B"]; b.AverageTimeSpent != 7 || b.TotalTimeSpent != 7 {
		t.Fatalf("B: want avg=7 total=7 got avg=%v total=%v", b.AverageTimeSpent, b.TotalTimeSpent)
	}
}

func TestInteractionEventRepoListEnrichedInnerJoin(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.New(ctx)
	repo := NewInteractionEventRepo(db, testutil.Logger(t))

	story := testutil.SeedStory(t, ctx, db, "Harbor", "Dock")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := testutil.SeedInteraction(t, ctx, db, story.ID, "Dock", 12, at)
	orphanStory := objectid.New()
	testutil.SeedInteraction(t, ctx, db, orphanStory, "Dock", 5, at)

	rows, err := repo.ListEnrichedByStoryID(dbc, story.ID)
	if err != nil {
		t.Fatalf("ListEnrichedByStoryID: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: want=1 got=%d", len(rows))
	}
	got := rows[0]
	if got.ID != ev.ID || got.PathTitle != "Dock" || got.TimeSpent != 12 || got.StoryTitle != "Harbor" {
		t.Fatalf("enriched row mismatch: %+v", got)
	}
	if !got.Timestamp.Equal(at) {
		t.Fatalf("timestamp: want=%v got=%v", at, got.Timestamp)
	}

	orphans, err := repo.ListEnrichedByStoryID(dbc, orphanStory)
	if err != nil {
		t.Fatalf("ListEnrichedByStoryID orphan: %v", err)
	}
	if len(orphans) != 0 {
		t.Fatalf("events without a story must be dropped, got %d", len(orphans))
	}
}
