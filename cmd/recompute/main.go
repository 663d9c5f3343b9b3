// ================== cmd/recompute/main.go ==================
//
// Batch entrypoint: refreshes decayed popularity across the hook catalog and
// recomputes every active user's interest profile. Intended to run on a cron
// cadence; both passes are idempotent and safe to re-run in full.
package main

import (
	"context"
	"log"
	"time"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/database"
	"github.com/hookedapp/hooked/internal/features/auth"
	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/interactions"
	"github.com/hookedapp/hooked/internal/features/profiles"
	"github.com/hookedapp/hooked/internal/features/ranking"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	hooksRepo := hooks.NewRepository(db.Database)
	now := time.Now().UTC()

	// Popularity refresh: independent of any user profile, per-item failures
	// are isolated in the report.
	updater := &ranking.PopularityUpdater{Catalog: hooksRepo}
	popReport, err := updater.UpdateAll(ctx, now)
	if err != nil {
		log.Fatal("Popularity refresh failed:", err)
	}
	log.Printf("Popularity refresh: %d scored, %d skipped, %d write errors",
		popReport.ItemsScored, popReport.ItemsSkipped, popReport.WriteErrors)

	// Full profile recomputation over all users with at least one event.
	recomputer := &ranking.Recomputer{
		Hooks:    hooksRepo,
		Events:   interactions.NewRepository(db.Database),
		Tags:     auth.NewRepository(db.Database),
		Profiles: profiles.NewRepository(db.Database),
		Builder: ranking.VectorBuilder{
			DecayLambda:   cfg.Ranking.InterestDecayLambda,
			ExplicitBoost: cfg.Ranking.ExplicitTagBoost,
			ImplicitBoost: cfg.Ranking.ImplicitTagBoost,
		},
		Workers: cfg.Ranking.RecomputeWorkers,
	}

	report, err := recomputer.Run(ctx, now)
	if err != nil {
		log.Fatal("Profile recompute failed:", err)
	}
	log.Printf("Profile recompute: %d users, %d profiles written, %d events (%d skipped) in %v",
		report.UsersProcessed, report.ProfilesWritten,
		report.EventsProcessed, report.EventsSkipped, report.Duration)
}
