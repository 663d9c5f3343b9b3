package ranking

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/interactions"
	"github.com/hookedapp/hooked/internal/features/profiles"
	"github.com/hookedapp/hooked/internal/pkg/logger"
)

// HookSource provides the catalog snapshot for a pass.
type HookSource interface {
	GetAll(ctx context.Context) ([]hooks.Hook, error)
}

// EventSource provides the event log snapshot for a pass.
type EventSource interface {
	GetAll(ctx context.Context) ([]interactions.Event, error)
}

// TagSource provides every user's explicitly declared tags.
type TagSource interface {
	ExplicitTagsByUser(ctx context.Context) (map[primitive.ObjectID][]string, error)
}

// ProfileSink persists recomputed profiles as whole-record replacements.
type ProfileSink interface {
	BulkUpsert(ctx context.Context, batch []profiles.InterestProfile) error
}

// Recomputer runs the full-batch profile recomputation: snapshot the
// catalog, the event log and the users' explicit tags, rebuild every active
// user's interest vector, and overwrite the stored profiles in one bulk
// write. Users with zero events are skipped entirely, so their previous
// profile survives untouched.
type Recomputer struct {
	Hooks    HookSource
	Events   EventSource
	Tags     TagSource
	Profiles ProfileSink

	Builder VectorBuilder
	Workers int // bounded per-user concurrency; defaults to 8
}

// Run executes one pass. Per-user vector construction is independent, so
// users are processed concurrently over read-only snapshots taken up front.
func (r *Recomputer) Run(ctx context.Context, now time.Time) (*BatchReport, error) {
	start := time.Now()

	allHooks, err := r.Hooks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(map[primitive.ObjectID]hooks.Hook, len(allHooks))
	for _, h := range allHooks {
		catalog[h.ID] = h
	}

	events, err := r.Events.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	explicitTags, err := r.Tags.ExplicitTagsByUser(ctx)
	if err != nil {
		return nil, err
	}

	grouped := GroupByUser(events)

	workers := r.Workers
	if workers <= 0 {
		workers = 8
	}

	var (
		mu     sync.Mutex
		batch  = make([]profiles.InterestProfile, 0, len(grouped))
		report = &BatchReport{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for userID, userEvents := range grouped {
		userID, userEvents := userID, userEvents
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			vector, stats := r.Builder.Build(now, userEvents, catalog, explicitTags[userID])

			mu.Lock()
			batch = append(batch, profiles.InterestProfile{
				UserID:         userID,
				InterestVector: vector,
				LastUpdated:    now,
			})
			report.UsersProcessed++
			report.EventsProcessed += stats.EventsProcessed
			report.EventsSkipped += stats.EventsSkipped
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := r.Profiles.BulkUpsert(ctx, batch); err != nil {
		return nil, err
	}
	report.ProfilesWritten = len(batch)
	report.Duration = time.Since(start)

	logger.Info("profile recompute: %d users, %d events (%d skipped) in %v",
		report.UsersProcessed, report.EventsProcessed, report.EventsSkipped, report.Duration)

	return report, nil
}
