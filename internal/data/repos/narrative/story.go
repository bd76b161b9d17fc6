package narrative

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type StoryRepo interface {
	// Create inserts the story together with its paths.
	Create(dbc dbctx.Context, row *types.Story) (*types.Story, error)
	// GetByID returns (nil, nil) when no story has the id.
	GetByID(dbc dbctx.Context, id string) (*types.Story, error)
	List(dbc dbctx.Context) ([]*types.Story, error)
}

type storyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoryRepo(db *gorm.DB, baseLog *logger.Logger) StoryRepo {
	return &storyRepo{db: db, log: baseLog.With("repo", "StoryRepo")}
}

func orderedPaths(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *storyRepo) Create(dbc dbctx.Context, row *types.Story) (*types.Story, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *storyRepo) GetByID(dbc dbctx.Context, id string) (*types.Story, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == "" {
		return nil, nil
	}
	var out types.Story
	err := t.WithContext(dbc.Ctx).
		Preload("Paths", orderedPaths).
		Where("id = ?", id).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *storyRepo) List(dbc dbctx.Context) ([]*types.Story, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Story{}
	if err := t.WithContext(dbc.Ctx).
		Preload("Paths", orderedPaths).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
