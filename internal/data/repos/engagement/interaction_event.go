package engagement

import (
	"gorm.io/gorm"

	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type InteractionEventRepo interface {
	// Append inserts one immutable event. Existing rows are never read or touched.
	Append(dbc dbctx.Context, row *types.InteractionEvent) error
	// ListEnrichedByStoryID inner-joins events with their story to attach its title.
	ListEnrichedByStoryID(dbc dbctx.Context, storyID string) ([]types.EnrichedInteraction, error)
	// AggregateTimeByStoryID returns AVG/SUM of time_spent per path title.
	AggregateTimeByStoryID(dbc dbctx.Context, storyID string) ([]types.PathTimeAggregate, error)
}

type interactionEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionEventRepo(db *gorm.DB, baseLog *logger.Logger) InteractionEventRepo {
	return &interactionEventRepo{db: db, log: baseLog.With("repo", "InteractionEventRepo")}
}

func (r *interactionEventRepo) Append(dbc dbctx.Context, row *types.InteractionEvent) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(dbc.Ctx).Create(row).Error
}

func (r *interactionEventRepo) ListEnrichedByStoryID(dbc dbctx.Context, storyID string) ([]types.EnrichedInteraction, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []types.EnrichedInteraction{}
	if storyID == "" {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Table("interaction_event AS e").
		Select(`e.id AS id,
  e.path_title AS path_title,
  e.time_spent AS time_spent,
  e.created_at AS created_at,
  s.title AS story_title`).
		Joins("JOIN story AS s ON s.id = e.story_id").
		Where("e.story_id = ?", storyID).
		Order("e.created_at ASC").
		Order("e.id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *interactionEventRepo) AggregateTimeByStoryID(dbc dbctx.Context, storyID string) ([]types.PathTimeAggregate, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []types.PathTimeAggregate{}
	if storyID == "" {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.InteractionEvent{}).
		Select(`path_title AS path_title,
  CAST(AVG(time_spent) AS DOUBLE PRECISION) AS average_time_spent,
  CAST(SUM(time_spent) AS BIGINT) AS total_time_spent`).
		Where("story_id = ?", storyID).
		Group("path_title").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
