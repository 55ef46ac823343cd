package routes

import (
	"github.com/zmrishh/regret-note/controllers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterRoutes wires the controllers onto the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cache *redis.Client, logger *zap.SugaredLogger) {
	entryController := controllers.NewEntryController(db, cache, logger)
	userController := controllers.NewUserController(db, logger)

	api := r.Group("/api")
	{
		api.GET("/entries", entryController.ListEntries)
		api.POST("/entries", entryController.CreateEntry)
		api.GET("/entries/:id", entryController.GetEntry)
		api.PUT("/entries/:id", entryController.UpdateEntry)
		api.DELETE("/entries/:id", entryController.DeleteEntry)

		api.POST("/users", userController.CreateUser)
		api.GET("/users/:id/entries", userController.GetUserEntries)
	}

	r.GET("/health", controllers.HealthCheck)
}
