package ranking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/interactions"
	"github.com/hookedapp/hooked/internal/pkg/decay"
	"github.com/hookedapp/hooked/internal/pkg/logger"
)

// Per-action weights for interest accumulation. Views carry no base weight;
// they contribute through watch duration alone.
var actionWeights = map[string]float64{
	interactions.ActionView:  0.0,
	interactions.ActionClick: 1.0,
	interactions.ActionLike:  2.0,
	interactions.ActionSave:  2.5,
	interactions.ActionShare: 2.5,
}

// DurationWeight converts seconds of watch time into interest score.
const DurationWeight = 0.05

// VectorStats counts what one build pass did, so batch reports can surface
// skipped records instead of burying them in logs.
type VectorStats struct {
	EventsProcessed int
	EventsSkipped   int
}

// VectorBuilder turns one user's event history into an interest vector.
type VectorBuilder struct {
	DecayLambda   float64 // per-day decay on event contributions
	ExplicitBoost float64 // added once per explicitly declared tag
	ImplicitBoost float64 // added per event carrying the tag
}

// NewVectorBuilder returns a builder with the platform defaults.
func NewVectorBuilder() VectorBuilder {
	return VectorBuilder{
		DecayLambda:   0.1,
		ExplicitBoost: 5.0,
		ImplicitBoost: 2.5,
	}
}

// Build computes the interest vector for one user. Events referencing hooks
// missing from the catalog are skipped and counted; the catalog and the log
// may be transiently inconsistent and that must never abort a pass.
func (b VectorBuilder) Build(
	now time.Time,
	events []interactions.Event,
	catalog map[primitive.ObjectID]hooks.Hook,
	explicitTags []string,
) (map[string]float64, VectorStats) {
	vector := make(map[string]float64)
	var stats VectorStats

	for _, event := range events {
		hook, ok := catalog[event.HookID]
		if !ok {
			logger.Debug("skipping event for missing hook %s", event.HookID.Hex())
			stats.EventsSkipped++
			continue
		}

		ageDays := decay.AgeDays(now, hook.Metadata.CreatedAt)
		factor := decay.Exponential(ageDays, b.DecayLambda)

		score := (actionWeights[event.Action] + event.Duration*DurationWeight) * factor
		for _, tag := range hook.Tags {
			vector[tag] += score
		}

		// Implicit tags were snapshotted at log time; a tag seen across
		// many events accumulates repeatedly.
		for _, tag := range event.ImplicitTags {
			vector[tag] += b.ImplicitBoost
		}

		stats.EventsProcessed++
	}

	for _, tag := range explicitTags {
		vector[tag] += b.ExplicitBoost
	}

	return vector, stats
}
