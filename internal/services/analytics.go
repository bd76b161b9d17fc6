package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos"
	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
)

type AnalyticsService interface {
	// Popularity ranks a story's paths by total choice count, highest first.
	Popularity(ctx context.Context, storyID string) ([]types.PathPopularity, error)
	// TimeSpent reports average/total dwell time for every path the story defines,
	// in story order.
	TimeSpent(ctx context.Context, storyID string) ([]types.PathTimeSpent, error)
}

type analyticsService struct {
	db       *gorm.DB
	log      *logger.Logger
	metrics  *observability.Metrics
	cache    AnalyticsCache
	stories  repos.StoryRepo
	events   repos.InteractionEventRepo
	counters repos.ChoiceCounterRepo
}

func NewAnalyticsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	metrics *observability.Metrics,
	cache AnalyticsCache,
	stories repos.StoryRepo,
	events repos.InteractionEventRepo,
	counters repos.ChoiceCounterRepo,
) AnalyticsService {
	return &analyticsService{
		db:       db,
		log:      baseLog.With("service", "AnalyticsService"),
		metrics:  metrics,
		cache:    cacheOrNoop(cache),
		stories:  stories,
		events:   events,
		counters: counters,
	}
}

func (s *analyticsService) Popularity(ctx context.Context, storyID string) ([]types.PathPopularity, error) {
	if !objectid.IsValid(storyID) {
		return nil, types.ErrInvalidIdentifier
	}
	ctx, span := observability.Tracer().Start(ctx, "AnalyticsService.Popularity")
	defer span.End()
	span.SetAttributes(attribute.String("story.id", storyID))

	var cached []types.PathPopularity
	gen, hit := s.fromCache(ctx, storyID, viewPopularity, &cached)
	if hit {
		return cached, nil
	}

	out, err := s.counters.PopularityByStoryID(dbctx.New(ctx), storyID)
	if err != nil {
		return nil, storeError(s.log, s.metrics, "popularity", err, "story_id", storyID)
	}
	s.toCache(ctx, storyID, viewPopularity, gen, out)
	return out, nil
}

func (s *analyticsService) TimeSpent(ctx context.Context, storyID string) ([]types.PathTimeSpent, error) {
	if !objectid.IsValid(storyID) {
		return nil, types.ErrInvalidIdentifier
	}
	ctx, span := observability.Tracer().Start(ctx, "AnalyticsService.TimeSpent")
	defer span.End()
	span.SetAttributes(attribute.String("story.id", storyID))

	var cached []types.PathTimeSpent
	gen, hit := s.fromCache(ctx, storyID, viewTimeSpent, &cached)
	if hit {
		return cached, nil
	}

	var (
		story *types.Story
		aggs  []types.PathTimeAggregate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		story, err = s.stories.GetByID(dbctx.New(gctx), storyID)
		if err != nil {
			return storeError(s.log, s.metrics, "time_spent_story", err, "story_id", storyID)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		aggs, err = s.events.AggregateTimeByStoryID(dbctx.New(gctx), storyID)
		if err != nil {
			return storeError(s.log, s.metrics, "time_spent_aggregate", err, "story_id", storyID)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if story == nil {
		return nil, fmt.Errorf("story %s: %w", storyID, types.ErrNotFound)
	}

	out := ReshapeTimeSpent(story.PathTitles(), aggs)
	s.toCache(ctx, storyID, viewTimeSpent, gen, out)
	return out, nil
}

// ReshapeTimeSpent emits exactly one row per story path, in story order. Paths
// without events get nil statistics; aggregates for paths the story no longer
// defines are dropped.
func ReshapeTimeSpent(pathTitles []string, aggs []types.PathTimeAggregate) []types.PathTimeSpent {
	byPath := make(map[string]types.PathTimeAggregate, len(aggs))
	for _, a := range aggs {
		byPath[a.PathTitle] = a
	}
	out := make([]types.PathTimeSpent, 0, len(pathTitles))
	for _, pt := range pathTitles {
		row := types.PathTimeSpent{PathTitle: pt}
		if a, ok := byPath[pt]; ok {
			avg := a.AverageTimeSpent
			total := a.TotalTimeSpent
			row.AverageTimeSpent = &avg
			row.TotalTimeSpent = &total
		}
		out = append(out, row)
	}
	return out
}

// fromCache reports the story's cache generation alongside the lookup result. The
// generation must be handed back to toCache unchanged.
func (s *analyticsService) fromCache(ctx context.Context, storyID, view string, dst any) (int64, bool) {
	gen, ok, err := s.cache.Get(ctx, storyID, view, dst)
	switch {
	case err != nil:
		s.metrics.IncAnalyticsCache(view, "error")
		s.log.Warn("analytics cache read failed", "story_id", storyID, "view", view, "error", err)
		return gen, false
	case ok:
		s.metrics.IncAnalyticsCache(view, "hit")
		return gen, true
	default:
		s.metrics.IncAnalyticsCache(view, "miss")
		return gen, false
	}
}

func (s *analyticsService) toCache(ctx context.Context, storyID, view string, gen int64, v any) {
	if err := s.cache.Set(ctx, storyID, view, gen, v); err != nil {
		s.log.Warn("analytics cache write failed", "story_id", storyID, "view", view, "error", err)
	}
}
