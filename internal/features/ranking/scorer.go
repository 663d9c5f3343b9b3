package ranking

import (
	"sort"
	"time"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/pkg/decay"
	"github.com/hookedapp/hooked/internal/pkg/random"
)

// Weights blend the four candidate score terms. They sum to 1.0 by
// convention, not enforcement.
type Weights struct {
	Base        float64
	Recency     float64
	Popularity  float64
	Exploration float64
}

// DefaultWeights matches the platform defaults.
var DefaultWeights = Weights{
	Base:        0.5,
	Recency:     0.2,
	Popularity:  0.2,
	Exploration: 0.1,
}

// Exploration bonus bounds for the uniform draw.
const (
	exploreMin = 0.01
	exploreMax = 0.1
)

// ScoredHook pairs a candidate with its blended score.
type ScoredHook struct {
	Hook  hooks.Hook
	Score float64
}

// CandidateScorer scores every catalog item against one interest vector.
type CandidateScorer struct {
	Weights       Weights
	RecencyLambda float64       // default 1/7: ~7-day recency horizon
	Rand          random.Source // injected so tests can pin the exploration term
}

// NewCandidateScorer returns a scorer with default weights and a seeded
// random source.
func NewCandidateScorer() CandidateScorer {
	return CandidateScorer{
		Weights:       DefaultWeights,
		RecencyLambda: 1.0 / 7.0,
		Rand:          random.New(),
	}
}

// Score ranks the catalog against the given interest vector, highest first.
// An empty or nil vector is valid: base relevance is zero everywhere and the
// ordering falls back to recency, popularity and exploration. The sort is
// stable so equal scores keep catalog order.
func (s CandidateScorer) Score(now time.Time, vector map[string]float64, catalog []hooks.Hook) []ScoredHook {
	maxViews := 1
	for i := range catalog {
		if catalog[i].Metadata.ViewCount > maxViews {
			maxViews = catalog[i].Metadata.ViewCount
		}
	}

	scored := make([]ScoredHook, 0, len(catalog))
	for _, hook := range catalog {
		scored = append(scored, ScoredHook{
			Hook:  hook,
			Score: s.scoreOne(now, vector, hook, maxViews),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func (s CandidateScorer) scoreOne(now time.Time, vector map[string]float64, hook hooks.Hook, maxViews int) float64 {
	baseScore := 0.0
	for _, tag := range hook.Tags {
		baseScore += vector[tag]
	}

	ageDays := decay.AgeDays(now, hook.Metadata.CreatedAt)
	recencyScore := decay.Exponential(ageDays, s.RecencyLambda)

	// Popularity here reads the raw view counter normalized by the catalog
	// max; the precomputed decayed popularity belongs to the trending path.
	popularityScore := float64(hook.Metadata.ViewCount) / float64(maxViews)

	explorationBonus := s.Rand.Float64InRange(exploreMin, exploreMax)

	return s.Weights.Base*baseScore +
		s.Weights.Recency*recencyScore +
		s.Weights.Popularity*popularityScore +
		s.Weights.Exploration*explorationBonus
}
