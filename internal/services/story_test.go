package services

import (
	"context"
	"errors"
	"testing"

	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
)

func TestStoryCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.stories.Create(ctx, StoryInput{
		Title: "  The Cave ",
		Paths: []StoryPathInput{
			{PathTitle: "Entrance", Options: []string{"Left", "Right"}},
			{PathTitle: "Left"},
			{PathTitle: "Right"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "The Cave" {
		t.Fatalf("title: want=%q got=%q", "The Cave", created.Title)
	}

	got, err := env.stories.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []string{"Entrance", "Left", "Right"}
	titles := got.PathTitles()
	if len(titles) != len(want) {
		t.Fatalf("paths: want=%v got=%v", want, titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("paths[%d]: want=%q got=%q", i, want[i], titles[i])
		}
	}
	if len(got.Paths[0].Options) != 2 {
		t.Fatalf("options: want=2 got=%d", len(got.Paths[0].Options))
	}
}

func TestStoryCreateRejectsInvalidDocuments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := map[string]StoryInput{
		"missing title":  {Paths: []StoryPathInput{{PathTitle: "A"}}},
		"no paths":       {Title: "T"},
		"empty path":     {Title: "T", Paths: []StoryPathInput{{PathTitle: " "}}},
		"duplicate path": {Title: "T", Paths: []StoryPathInput{{PathTitle: "A"}, {PathTitle: "A"}}},
		"dangling option": {Title: "T", Paths: []StoryPathInput{
			{PathTitle: "A", Options: []string{"Nowhere"}},
		}},
	}
	for name, in := range cases {
		if _, err := env.stories.Create(ctx, in); !errors.Is(err, types.ErrInvalidArgument) {
			t.Fatalf("%s: want=%v got=%v", name, types.ErrInvalidArgument, err)
		}
	}
}

func TestStoryGetErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []string{"", "123", "ZZZZZZZZZZZZZZZZZZZZZZZZ", "507F1F77BCF86CD799439011"} {
		if _, err := env.stories.Get(ctx, id); !errors.Is(err, types.ErrInvalidIdentifier) {
			t.Fatalf("Get(%q): want=%v got=%v", id, types.ErrInvalidIdentifier, err)
		}
	}
	if _, err := env.stories.Get(ctx, "507f1f77bcf86cd799439011"); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("Get(unassigned): want=%v got=%v", types.ErrNotFound, err)
	}
}

func TestStoryList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two"} {
		if _, err := env.stories.Create(ctx, StoryInput{Title: title, Paths: []StoryPathInput{{PathTitle: "Start"}}}); err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}
	list, err := env.stories.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List: want=2 got=%d", len(list))
	}
}
