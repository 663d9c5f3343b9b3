package hooks

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hookedapp/hooked/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/hooks")
	{
		group.GET("", handler.ListHooks)
		group.GET("/:id", handler.GetHook)
	}
}
