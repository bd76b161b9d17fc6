package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos"
	types "github.com/neharvard/interactive-storytelling-server/internal/domain"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/dbctx"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/objectid"
)

type StoryPathInput struct {
	PathTitle string   `json:"pathTitle"`
	Content   string   `json:"content,omitempty"`
	Options   []string `json:"options,omitempty"`
}

type StoryInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Paths       []StoryPathInput `json:"paths"`
}

type StoryService interface {
	Create(ctx context.Context, in StoryInput) (*types.Story, error)
	List(ctx context.Context) ([]*types.Story, error)
	Get(ctx context.Context, id string) (*types.Story, error)
}

type storyService struct {
	db      *gorm.DB
	log     *logger.Logger
	metrics *observability.Metrics
	clock   Clock
	stories repos.StoryRepo
}

func NewStoryService(db *gorm.DB, baseLog *logger.Logger, metrics *observability.Metrics, clock Clock, stories repos.StoryRepo) StoryService {
	if clock == nil {
		clock = NewClock()
	}
	return &storyService{
		db:      db,
		log:     baseLog.With("service", "StoryService"),
		metrics: metrics,
		clock:   clock,
		stories: stories,
	}
}

func (s *storyService) Create(ctx context.Context, in StoryInput) (*types.Story, error) {
	story, err := s.buildStory(in)
	if err != nil {
		return nil, err
	}
	created, err := s.stories.Create(dbctx.New(ctx), story)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: duplicate path title", types.ErrInvalidArgument)
		}
		return nil, storeError(s.log, s.metrics, "create_story", err)
	}
	s.log.Info("story created", "story_id", created.ID, "paths", len(created.Paths))
	return created, nil
}

// buildStory validates the submitted document and assigns identifiers. Path titles
// must be unique within the story and every branch option must name one of them.
func (s *storyService) buildStory(in StoryInput) (*types.Story, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrInvalidArgument)
	}
	if len(in.Paths) == 0 {
		return nil, fmt.Errorf("%w: at least one path is required", types.ErrInvalidArgument)
	}

	defined := make(map[string]struct{}, len(in.Paths))
	for i, p := range in.Paths {
		pt := strings.TrimSpace(p.PathTitle)
		if pt == "" {
			return nil, fmt.Errorf("%w: path %d has an empty title", types.ErrInvalidArgument, i)
		}
		if _, dup := defined[pt]; dup {
			return nil, fmt.Errorf("%w: duplicate path title %q", types.ErrInvalidArgument, pt)
		}
		defined[pt] = struct{}{}
	}

	now := s.clock.Now()
	story := &types.Story{
		ID:          objectid.New(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Paths:       make([]*types.StoryPath, 0, len(in.Paths)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, p := range in.Paths {
		var options []string
		for _, opt := range p.Options {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			if _, ok := defined[opt]; !ok {
				return nil, fmt.Errorf("%w: path %q branches to undefined path %q", types.ErrInvalidArgument, strings.TrimSpace(p.PathTitle), opt)
			}
			options = append(options, opt)
		}
		story.Paths = append(story.Paths, &types.StoryPath{
			ID:        objectid.New(),
			StoryID:   story.ID,
			Position:  i,
			PathTitle: strings.TrimSpace(p.PathTitle),
			Content:   p.Content,
			Options:   options,
			CreatedAt: now,
		})
	}
	return story, nil
}

func (s *storyService) List(ctx context.Context) ([]*types.Story, error) {
	out, err := s.stories.List(dbctx.New(ctx))
	if err != nil {
		return nil, storeError(s.log, s.metrics, "list_stories", err)
	}
	return out, nil
}

func (s *storyService) Get(ctx context.Context, id string) (*types.Story, error) {
	if !objectid.IsValid(id) {
		return nil, types.ErrInvalidIdentifier
	}
	story, err := s.stories.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, storeError(s.log, s.metrics, "get_story", err, "story_id", id)
	}
	if story == nil {
		return nil, fmt.Errorf("story %s: %w", id, types.ErrNotFound)
	}
	return story, nil
}
