package users

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/features/auth"
	"github.com/hookedapp/hooked/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	authRepo := auth.NewRepository(db)
	handler := NewHandler(authRepo)

	group := router.Group("/users")
	group.Use(middleware.Auth())
	{
		group.GET("/me/tags", handler.GetTags)
		group.PUT("/me/tags", handler.UpdateTags)
	}
}
