package services

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos"
	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
)

type InteractionInput struct {
	StoryID   string  `json:"storyId"`
	PathTitle string  `json:"pathTitle"`
	TimeSpent any     `json:"timeSpent"`
	Title     *string `json:"title,omitempty"`
}

type InteractionService interface {
	Record(ctx context.Context, in InteractionInput) (*types.InteractionEvent, error)
	ListByStory(ctx context.Context, storyID string) ([]types.EnrichedInteraction, error)
}

type interactionService struct {
	db      *gorm.DB
	log     *logger.Logger
	metrics *observability.Metrics
	clock   Clock
	cache   AnalyticsCache
	events  repos.InteractionEventRepo
}

func NewInteractionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	metrics *observability.Metrics,
	clock Clock,
	cache AnalyticsCache,
	events repos.InteractionEventRepo,
) InteractionService {
	if clock == nil {
		clock = NewClock()
	}
	return &interactionService{
		db:      db,
		log:     baseLog.With("service", "InteractionService"),
		metrics: metrics,
		clock:   clock,
		cache:   cacheOrNoop(cache),
		events:  events,
	}
}

func (s *interactionService) Record(ctx context.Context, in InteractionInput) (*types.InteractionEvent, error) {
	if !objectid.IsValid(in.StoryID) {
		return nil, types.ErrInvalidIdentifier
	}
	ctx, span := observability.Tracer().Start(ctx, "InteractionService.Record")
	defer span.End()
	span.SetAttributes(attribute.String("story.id", in.StoryID))

	var title *string
	if in.Title != nil {
		if t := strings.TrimSpace(*in.Title); t != "" {
			title = &t
		}
	}
	row := &types.InteractionEvent{
		ID:        objectid.New(),
		StoryID:   in.StoryID,
		PathTitle: strings.TrimSpace(in.PathTitle),
		Title:     title,
		TimeSpent: NormalizeTimeSpent(in.TimeSpent),
		CreatedAt: s.clock.Now(),
	}
	if err := s.events.Append(dbctx.New(ctx), row); err != nil {
		return nil, storeError(s.log, s.metrics, "record_interaction", err, "story_id", in.StoryID)
	}
	s.metrics.IncInteractionRecorded()
	if err := s.cache.Invalidate(ctx, in.StoryID); err != nil {
		s.log.Warn("analytics cache invalidation failed", "story_id", in.StoryID, "error", err)
	}
	return row, nil
}

func (s *interactionService) ListByStory(ctx context.Context, storyID string) ([]types.EnrichedInteraction, error) {
	if !objectid.IsValid(storyID) {
		return nil, types.ErrInvalidIdentifier
	}
	out, err := s.events.ListEnrichedByStoryID(dbctx.New(ctx), storyID)
	if err != nil {
		return nil, storeError(s.log, s.metrics, "list_interactions", err, "story_id", storyID)
	}
	return out, nil
}

// MaxTimeSpent caps a single event's dwell time (about 68 years) so per-path
// SUM(time_spent) stays far inside int64 for any realistic event count.
const MaxTimeSpent int64 = math.MaxInt32

// NormalizeTimeSpent turns a client-supplied dwell time into whole seconds in
// [0, MaxTimeSpent]. Strings contribute their leading integer ("5 sec" is 5);
// anything that does not start with a number becomes 0. Bad input never fails
// the request.
func NormalizeTimeSpent(v any) int64 {
	var n int64
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case float32:
		n = truncFloat(float64(t))
	case float64:
		n = truncFloat(t)
	case json.Number:
		n = leadingInt(t.String())
	case string:
		n = leadingInt(t)
	default:
		return 0
	}
	switch {
	case n < 0:
		return 0
	case n > MaxTimeSpent:
		return MaxTimeSpent
	}
	return n
}

func truncFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}

func leadingInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// out of int64 range
		if strings.HasPrefix(s, "-") {
			return 0
		}
		return math.MaxInt64
	}
	return n
}
