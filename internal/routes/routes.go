package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/features/auth"
	"github.com/hookedapp/hooked/internal/features/feed"
	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/interactions"
	"github.com/hookedapp/hooked/internal/features/users"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	// API v1 group
	api := router.Group("/api/v1")

	// Register feature routes
	auth.RegisterRoutes(api, db, cfg)
	users.RegisterRoutes(api, db, cfg)
	hooks.RegisterRoutes(api, db, cfg)
	interactions.RegisterRoutes(api, db, cfg)
	feed.RegisterRoutes(api, db, cfg)
}
