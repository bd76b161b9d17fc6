package services

import "context"

const (
	viewPopularity = "popularity"
	viewTimeSpent  = "timespent"
)

// AnalyticsCache holds derived analytics views per story. Every Invalidate starts
// a new generation for the story; Get reports the generation it observed and Set
// must drop the write when the story has moved past that generation, so a view
// computed before a concurrent write is never stored after it.
type AnalyticsCache interface {
	Get(ctx context.Context, storyID, view string, dst any) (gen int64, hit bool, err error)
	Set(ctx context.Context, storyID, view string, gen int64, v any) error
	Invalidate(ctx context.Context, storyID string) error
}

type noopAnalyticsCache struct{}

func (noopAnalyticsCache) Get(context.Context, string, string, any) (int64, bool, error) {
	return 0, false, nil
}
func (noopAnalyticsCache) Set(context.Context, string, string, int64, any) error { return nil }
func (noopAnalyticsCache) Invalidate(context.Context, string) error              { return nil }

func cacheOrNoop(c AnalyticsCache) AnalyticsCache {
	if c == nil {
		return noopAnalyticsCache{}
	}
	return c
}
