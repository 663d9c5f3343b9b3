package feed

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/profiles"
	"github.com/hookedapp/hooked/internal/features/ranking"
	"github.com/hookedapp/hooked/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	hooksRepo := hooks.NewRepository(db)
	profilesRepo := profiles.NewRepository(db)

	scorer := ranking.NewCandidateScorer()
	scorer.RecencyLambda = cfg.Ranking.RecencyDecayLambda

	service := NewService(hooksRepo, profilesRepo, scorer, cfg.Ranking)
	handler := NewHandler(service)

	group := router.Group("/feed")
	{
		group.GET("/trending", handler.GetTrending)
		group.GET("", middleware.Auth(), handler.GetFeed)
	}
}
