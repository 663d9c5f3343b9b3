package ranking

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/pkg/decay"
	"github.com/hookedapp/hooked/internal/pkg/logger"
)

// Engagement counter weights for the trending score.
const (
	viewWeight  = 0.1
	likeWeight  = 0.5
	saveWeight  = 0.8
	shareWeight = 1.0
)

var errNoCreatedAt = errors.New("hook has no parsable creation time")

// TrendingScore computes the decayed popularity of one hook: the weighted
// counter sum scaled by logarithmic age decay, rounded to three decimals.
// A hook without a usable creation time is a per-record failure.
func TrendingScore(now time.Time, hook *hooks.Hook) (float64, error) {
	if hook.Metadata.CreatedAt.IsZero() {
		return 0, errNoCreatedAt
	}

	raw := float64(hook.Metadata.ViewCount)*viewWeight +
		float64(hook.Metadata.LikeCount)*likeWeight +
		float64(hook.Metadata.SaveCount)*saveWeight +
		float64(hook.Metadata.ShareCount)*shareWeight

	ageDays := decay.AgeDays(now, hook.Metadata.CreatedAt)
	score := raw * decay.Logarithmic(ageDays)

	return math.Round(score*1000) / 1000, nil
}

// PopularityCatalog is the slice of the hooks store the updater needs.
type PopularityCatalog interface {
	GetAll(ctx context.Context) ([]hooks.Hook, error)
	UpdatePopularity(ctx context.Context, id primitive.ObjectID, score float64) error
}

// PopularityReport summarizes one popularity refresh.
type PopularityReport struct {
	ItemsScored  int
	ItemsSkipped int // per-record failures, written as popularity 0
	WriteErrors  int
}

// PopularityUpdater recomputes metadata.popularity across the catalog.
// Items are independent; a failure on one never aborts the batch, and the
// refresh may run concurrently with feed serving (readers tolerate a mix of
// old and new values within one request).
type PopularityUpdater struct {
	Catalog PopularityCatalog
}

// UpdateAll rescoring pass. Returns an error only on a batch-level failure
// (catalog unreadable); per-item problems land in the report.
func (u *PopularityUpdater) UpdateAll(ctx context.Context, now time.Time) (*PopularityReport, error) {
	catalog, err := u.Catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &PopularityReport{}
	for i := range catalog {
		hook := &catalog[i]

		score, err := TrendingScore(now, hook)
		if err != nil {
			logger.Warn("popularity score failed for hook %s: %v", hook.ID.Hex(), err)
			report.ItemsSkipped++
			score = 0
		} else {
			report.ItemsScored++
		}

		if err := u.Catalog.UpdatePopularity(ctx, hook.ID, score); err != nil {
			logger.Error("popularity write failed for hook %s: %v", hook.ID.Hex(), err)
			report.WriteErrors++
		}
	}

	return report, nil
}
