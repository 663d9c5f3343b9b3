package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/pkg/random"
)

func fixedScorer() CandidateScorer {
	return CandidateScorer{
		Weights:       DefaultWeights,
		RecencyLambda: 1.0 / 7.0,
		Rand:          random.Fixed(0.05),
	}
}

func TestCandidateScorer_MatchingTagsRankHigher(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	match := testHook(primitive.NewObjectID(), []string{"history", "rome"}, now)
	other := testHook(primitive.NewObjectID(), []string{"cooking"}, now)

	vector := map[string]float64{"history": 3.0, "rome": 1.5}
	scored := fixedScorer().Score(now, vector, []hooks.Hook{other, match})

	require.Len(t, scored, 2)
	require.Equal(t, match.ID, scored[0].Hook.ID)
	require.Greater(t, scored[0].Score, scored[1].Score)
}

func TestCandidateScorer_EmptyVectorFallsBackToRecency(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fresh := testHook(primitive.NewObjectID(), []string{"a"}, now)
	old := testHook(primitive.NewObjectID(), []string{"b"}, now.AddDate(0, 0, -20))

	scored := fixedScorer().Score(now, nil, []hooks.Hook{old, fresh})

	require.Equal(t, fresh.ID, scored[0].Hook.ID)
}

func TestCandidateScorer_PopularityNormalizedByCatalogMax(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	popular := testHook(primitive.NewObjectID(), nil, now)
	popular.Metadata.ViewCount = 1000
	obscure := testHook(primitive.NewObjectID(), nil, now)
	obscure.Metadata.ViewCount = 10

	scored := fixedScorer().Score(now, nil, []hooks.Hook{obscure, popular})

	require.Equal(t, popular.ID, scored[0].Hook.ID)

	// With identical recency and exploration pinned, the gap is exactly the
	// popularity weight times the normalized view delta.
	delta := scored[0].Score - scored[1].Score
	require.InDelta(t, 0.2*(1.0-10.0/1000.0), delta, 1e-9)
}

func TestCandidateScorer_ZeroViewCatalog(t *testing.T) {
	now := time.Now()
	scored := fixedScorer().Score(now, nil, []hooks.Hook{
		testHook(primitive.NewObjectID(), nil, now),
	})

	// maxViews floors at 1, so zero views never divides by zero.
	require.Len(t, scored, 1)
	require.False(t, scored[0].Score != scored[0].Score) // not NaN
}

func TestCandidateScorer_StableOrderOnTies(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := testHook(primitive.NewObjectID(), nil, now)
	b := testHook(primitive.NewObjectID(), nil, now)
	c := testHook(primitive.NewObjectID(), nil, now)

	scored := fixedScorer().Score(now, nil, []hooks.Hook{a, b, c})

	require.Equal(t, a.ID, scored[0].Hook.ID)
	require.Equal(t, b.ID, scored[1].Hook.ID)
	require.Equal(t, c.ID, scored[2].Hook.ID)
}
