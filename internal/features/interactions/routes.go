package interactions

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/middleware"
	"github.com/hookedapp/hooked/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	hooksRepo := hooks.NewRepository(db)
	handler := NewHandler(repo, hooksRepo)

	// One event per scroll tick adds up fast; cap the write rate per client.
	limiter := ratelimit.New(120, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	group := router.Group("/interactions")
	group.Use(middleware.Auth())
	{
		group.POST("/log", ratelimit.UserBasedMiddleware(limiter), handler.LogInteraction)
		group.GET("/me", handler.GetMyInteractions)
	}
}
