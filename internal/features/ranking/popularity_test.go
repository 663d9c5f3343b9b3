package ranking

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/hooks"
)

func TestTrendingScore_FreshHook(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	hook := &hooks.Hook{
		Metadata: hooks.Metadata{
			CreatedAt:  now,
			ViewCount:  100,
			LikeCount:  10,
			SaveCount:  5,
			ShareCount: 2,
		},
	}

	score, err := TrendingScore(now, hook)
	require.NoError(t, err)

	// Age below one day floors the decay at 1, so the raw weighted sum
	// passes through: 100*0.1 + 10*0.5 + 5*0.8 + 2*1.0 = 21.
	require.InDelta(t, 21.0, score, 1e-9)
}

func TestTrendingScore_AgeDecaysScore(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	counters := hooks.Metadata{ViewCount: 50, LikeCount: 20}

	fresh := &hooks.Hook{Metadata: counters}
	fresh.Metadata.CreatedAt = now

	old := &hooks.Hook{Metadata: counters}
	old.Metadata.CreatedAt = now.AddDate(0, 0, -10)

	freshScore, err := TrendingScore(now, fresh)
	require.NoError(t, err)
	oldScore, err := TrendingScore(now, old)
	require.NoError(t, err)

	require.Greater(t, freshScore, oldScore)
	require.Greater(t, oldScore, 0.0)
}

func TestTrendingScore_RoundsToThreeDecimals(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	hook := &hooks.Hook{
		Metadata: hooks.Metadata{
			CreatedAt: now.AddDate(0, 0, -7),
			ViewCount: 33,
			LikeCount: 7,
		},
	}

	score, err := TrendingScore(now, hook)
	require.NoError(t, err)
	require.Equal(t, math.Round(score*1000)/1000, score)
}

func TestTrendingScore_MissingCreatedAt(t *testing.T) {
	hook := &hooks.Hook{Metadata: hooks.Metadata{ViewCount: 1000}}

	_, err := TrendingScore(time.Now(), hook)
	require.Error(t, err)
}

// fakeCatalog backs the updater tests without Mongo.
type fakeCatalog struct {
	items   []hooks.Hook
	written map[primitive.ObjectID]float64
	failOn  primitive.ObjectID
	listErr error
}

func (f *fakeCatalog) GetAll(ctx context.Context) ([]hooks.Hook, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCatalog) UpdatePopularity(ctx context.Context, id primitive.ObjectID, score float64) error {
	if id == f.failOn {
		return errors.New("write failed")
	}
	if f.written == nil {
		f.written = make(map[primitive.ObjectID]float64)
	}
	f.written[id] = score
	return nil
}

func TestPopularityUpdater_MalformedItemIsolated(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	items := make([]hooks.Hook, 5)
	for i := range items {
		items[i] = hooks.Hook{
			ID: primitive.NewObjectID(),
			Metadata: hooks.Metadata{
				CreatedAt: now.AddDate(0, 0, -i),
				LikeCount: 10,
			},
		}
	}
	// Third item has no creation time.
	items[2].Metadata.CreatedAt = time.Time{}

	catalog := &fakeCatalog{items: items}
	updater := &PopularityUpdater{Catalog: catalog}

	report, err := updater.UpdateAll(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, 4, report.ItemsScored)
	require.Equal(t, 1, report.ItemsSkipped)
	require.Equal(t, 0, report.WriteErrors)

	// The malformed item still gets a write, pinned to zero.
	require.Len(t, catalog.written, 5)
	require.Equal(t, 0.0, catalog.written[items[2].ID])
	for i, item := range items {
		if i == 2 {
			continue
		}
		require.Greater(t, catalog.written[item.ID], 0.0)
	}
}

func TestPopularityUpdater_WriteErrorDoesNotAbort(t *testing.T) {
	now := time.Now()
	a := hooks.Hook{ID: primitive.NewObjectID(), Metadata: hooks.Metadata{CreatedAt: now, LikeCount: 1}}
	b := hooks.Hook{ID: primitive.NewObjectID(), Metadata: hooks.Metadata{CreatedAt: now, LikeCount: 2}}

	catalog := &fakeCatalog{items: []hooks.Hook{a, b}, failOn: a.ID}
	updater := &PopularityUpdater{Catalog: catalog}

	report, err := updater.UpdateAll(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, report.WriteErrors)
	require.Contains(t, catalog.written, b.ID)
}

func TestPopularityUpdater_CatalogFailure(t *testing.T) {
	catalog := &fakeCatalog{listErr: errors.New("db down")}
	updater := &PopularityUpdater{Catalog: catalog}

	_, err := updater.UpdateAll(context.Background(), time.Now())
	require.Error(t, err)
}
