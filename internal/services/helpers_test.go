package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/neharvard/interactive-storytelling-server/internal/data/repos"
	"github.com/neharvard/interactive-storytelling-server/internal/data/repos/testutil"
	"github.com/neharvard/interactive-storytelling-server/internal/observability"
)

type testEnv struct {
	db           *gorm.DB
	cache        *memoryCache
	stories      StoryService
	interactions InteractionService
	choices      ChoiceService
	analytics    AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	metrics := observability.NewMetrics()
	cache := newMemoryCache()
	clock := NewClock()

	storyRepo := repos.NewStoryRepo(db, log)
	eventRepo := repos.NewInteractionEventRepo(db, log)
	counterRepo := repos.NewChoiceCounterRepo(db, log)

	return &testEnv{
		db:           db,
		cache:        cache,
		stories:      NewStoryService(db, log, metrics, clock, storyRepo),
		interactions: NewInteractionService(db, log, metrics, clock, cache, eventRepo),
		choices:      NewChoiceService(db, log, metrics, cache, counterRepo),
		analytics:    NewAnalyticsService(db, log, metrics, cache, storyRepo, eventRepo, counterRepo),
	}
}

// memoryCache is an in-process AnalyticsCache with the same generation rules as
// the Redis cache. afterMiss, when set, runs after a miss has been reported.
type memoryCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	gens        map[string]int64
	invalidated map[string]int
	afterMiss   func(storyID string)
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, gens: map[string]int64{}, invalidated: map[string]int{}}
}

func (m *memoryCache) Get(_ context.Context, storyID, view string, dst any) (int64, bool, error) {
	m.mu.Lock()
	raw, ok := m.entries[storyID+"/"+view]
	gen := m.gens[storyID]
	hook := m.afterMiss
	m.mu.Unlock()
	if !ok {
		if hook != nil {
			hook(storyID)
		}
		return gen, false, nil
	}
	return gen, true, json.Unmarshal(raw, dst)
}

func (m *memoryCache) Set(_ context.Context, storyID, view string, gen int64, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gens[storyID] != gen {
		return nil
	}
	m.entries[storyID+"/"+view] = raw
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, storyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, view := range []string{viewPopularity, viewTimeSpent} {
		delete(m.entries, storyID+"/"+view)
	}
	m.gens[storyID]++
	m.invalidated[storyID]++
	return nil
}

func (m *memoryCache) cached(storyID, view string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[storyID+"/"+view]
	return ok
}

func (m *memoryCache) invalidations(storyID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.invalidated[storyID]
}

func strPtr(s string) *string { return &s }
