package engagement

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type ChoiceCounterRepo interface {
	// Increment atomically bumps the counter for (StoryID, PathTitle, Title), inserting
	// it with count=1 when absent. UserID is only written on insert.
	Increment(dbc dbctx.Context, row *types.ChoiceCounter) error
	// PopularityByStoryID sums counts per path title, highest first.
	PopularityByStoryID(dbc dbctx.Context, storyID string) ([]types.PathPopularity, error)
}

type choiceCounterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChoiceCounterRepo(db *gorm.DB, baseLog *logger.Logger) ChoiceCounterRepo {
	return &choiceCounterRepo{db: db, log: baseLog.With("repo", "ChoiceCounterRepo")}
}

func (r *choiceCounterRepo) Increment(dbc dbctx.Context, row *types.ChoiceCounter) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.StoryID == "" {
		return nil
	}
	now := time.Now().UTC()
	row.Count = 1
	row.CreatedAt = now
	row.UpdatedAt = now

	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "story_id"},
				{Name: "path_title"},
				{Name: "title"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("choice_counter.count + 1"),
				"updated_at": now,
			}),
		}).
		Create(row).Error
}

func (r *choiceCounterRepo) PopularityByStoryID(dbc dbctx.Context, storyID string) ([]types.PathPopularity, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []types.PathPopularity{}
	if storyID == "" {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.ChoiceCounter{}).
		Select("path_title AS path_title, CAST(SUM(count) AS BIGINT) AS count").
		Where("story_id = ?", storyID).
		Group("path_title").
		Order("SUM(count) DESC").
		Order("path_title ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
