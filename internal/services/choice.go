package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos"
	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
)

type ChoiceInput struct {
	StoryID   string  `json:"storyId"`
	PathTitle string  `json:"pathTitle"`
	Title     string  `json:"title"`
	UserID    *string `json:"userId,omitempty"`
}

type ChoiceService interface {
	RecordChoice(ctx context.Context, in ChoiceInput) error
}

type choiceService struct {
	db       *gorm.DB
	log      *logger.Logger
	metrics  *observability.Metrics
	cache    AnalyticsCache
	counters repos.ChoiceCounterRepo
}

func NewChoiceService(
	db *gorm.DB,
	baseLog *logger.Logger,
	metrics *observability.Metrics,
	cache AnalyticsCache,
	counters repos.ChoiceCounterRepo,
) ChoiceService {
	return &choiceService{
		db:       db,
		log:      baseLog.With("service", "ChoiceService"),
		metrics:  metrics,
		cache:    cacheOrNoop(cache),
		counters: counters,
	}
}

// RecordChoice counts one reader choice. The increment is a single upsert
// statement so concurrent calls for the same key never lose an update.
func (s *choiceService) RecordChoice(ctx context.Context, in ChoiceInput) error {
	if !objectid.IsValid(in.StoryID) {
		return types.ErrInvalidIdentifier
	}
	ctx, span := observability.Tracer().Start(ctx, "ChoiceService.RecordChoice")
	defer span.End()
	span.SetAttributes(attribute.String("story.id", in.StoryID))

	var userID *string
	if in.UserID != nil {
		if u := strings.TrimSpace(*in.UserID); u != "" {
			userID = &u
		}
	}
	row := &types.ChoiceCounter{
		ID:        objectid.New(),
		StoryID:   in.StoryID,
		PathTitle: strings.TrimSpace(in.PathTitle),
		Title:     strings.TrimSpace(in.Title),
		UserID:    userID,
	}
	if err := s.counters.Increment(dbctx.New(ctx), row); err != nil {
		return storeError(s.log, s.metrics, "record_choice", err, "story_id", in.StoryID)
	}
	s.metrics.IncChoiceRecorded()
	if err := s.cache.Invalidate(ctx, in.StoryID); err != nil {
		s.log.Warn("analytics cache invalidation failed", "story_id", in.StoryID, "error", err)
	}
	s.log.Debug("choice recorded", "story_id", in.StoryID, "path_title", row.PathTitle, "user_id", userID)
	return nil
}
