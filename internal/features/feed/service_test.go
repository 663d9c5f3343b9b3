package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/profiles"
	"github.com/hookedapp/hooked/internal/features/ranking"
	"github.com/hookedapp/hooked/internal/pkg/random"
)

type fakeCatalog struct{ items []hooks.Hook }

func (f *fakeCatalog) GetAll(ctx context.Context) ([]hooks.Hook, error) { return f.items, nil }

func (f *fakeCatalog) GetTrending(ctx context.Context, limit int) ([]hooks.Hook, error) {
	if limit > len(f.items) {
		limit = len(f.items)
	}
	return f.items[:limit], nil
}

type fakeProfiles struct{ profile *profiles.InterestProfile }

func (f *fakeProfiles) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*profiles.InterestProfile, error) {
	return f.profile, nil
}

func testService(catalog []hooks.Hook, profile *profiles.InterestProfile) *Service {
	scorer := ranking.CandidateScorer{
		Weights:       ranking.DefaultWeights,
		RecencyLambda: 1.0 / 7.0,
		Rand:          random.Fixed(0.05),
	}
	cfg := config.RankingConfig{
		MMRLambda:    0.7,
		PoolFactor:   3,
		FeedSize:     10,
		TrendingSize: 6,
	}
	return NewService(&fakeCatalog{items: catalog}, &fakeProfiles{profile: profile}, scorer, cfg)
}

func feedHook(headline string, tags []string, created time.Time) hooks.Hook {
	return hooks.Hook{
		ID:       primitive.NewObjectID(),
		Headline: headline,
		Tags:     tags,
		Metadata: hooks.Metadata{CreatedAt: created},
	}
}

func TestGetPersonalizedFeed_WithProfile(t *testing.T) {
	now := time.Now().UTC()
	match := feedHook("match", []string{"history"}, now)
	other := feedHook("other", []string{"cooking"}, now)

	profile := &profiles.InterestProfile{
		InterestVector: map[string]float64{"history": 4.0},
	}
	svc := testService([]hooks.Hook{other, match}, profile)

	resp, err := svc.GetPersonalizedFeed(context.Background(), primitive.NewObjectID(), 2)
	require.NoError(t, err)

	require.True(t, resp.Meta.Personalized)
	require.Len(t, resp.Items, 2)
	require.Equal(t, match.ID, resp.Items[0].ID)
	require.Greater(t, resp.Items[0].Score, resp.Items[1].Score)
}

func TestGetPersonalizedFeed_MissingProfileColdStart(t *testing.T) {
	now := time.Now().UTC()
	catalog := []hooks.Hook{
		feedHook("fresh", []string{"a"}, now),
		feedHook("old", []string{"b"}, now.AddDate(0, 0, -30)),
	}

	svc := testService(catalog, nil)

	resp, err := svc.GetPersonalizedFeed(context.Background(), primitive.NewObjectID(), 2)
	require.NoError(t, err)

	// No profile is not an error: the feed degrades to recency-led ranking.
	require.False(t, resp.Meta.Personalized)
	require.Len(t, resp.Items, 2)
	require.Equal(t, "fresh", resp.Items[0].Headline)
}

func TestGetPersonalizedFeed_EmptyCatalog(t *testing.T) {
	svc := testService(nil, nil)

	resp, err := svc.GetPersonalizedFeed(context.Background(), primitive.NewObjectID(), 10)
	require.NoError(t, err)

	require.Empty(t, resp.Items)
	require.NotNil(t, resp.Meta.EmptyReason)
	require.Equal(t, "EMPTY_CATALOG", *resp.Meta.EmptyReason)
}

func TestGetPersonalizedFeed_DefaultLimit(t *testing.T) {
	now := time.Now().UTC()
	catalog := make([]hooks.Hook, 20)
	for i := range catalog {
		catalog[i] = feedHook("h", []string{"t"}, now.AddDate(0, 0, -i))
	}

	svc := testService(catalog, nil)

	resp, err := svc.GetPersonalizedFeed(context.Background(), primitive.NewObjectID(), 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 10)
}

func TestGetTrending(t *testing.T) {
	now := time.Now().UTC()
	catalog := make([]hooks.Hook, 8)
	for i := range catalog {
		catalog[i] = feedHook("h", nil, now)
		catalog[i].Metadata.Popularity = float64(8 - i)
	}

	svc := testService(catalog, nil)

	resp, err := svc.GetTrending(context.Background(), 0)
	require.NoError(t, err)

	// Default trending size is 6.
	require.Len(t, resp.Items, 6)
	require.Equal(t, 8.0, resp.Items[0].Popularity)
}
