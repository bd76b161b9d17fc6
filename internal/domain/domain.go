package domain

import (
	"github.com/neharvard/interactive-storytelling-server/internal/domain/engagement"
	"github.com/neharvard/interactive-storytelling-server/internal/domain/narrative"
)

type Story = narrative.Story
type StoryPath = narrative.StoryPath

type InteractionEvent = engagement.InteractionEvent
type EnrichedInteraction = engagement.EnrichedInteraction
type ChoiceCounter = engagement.ChoiceCounter

type PathPopularity = engagement.PathPopularity
type PathTimeSpent = engagement.PathTimeSpent
type PathTimeAggregate = engagement.PathTimeAggregate
