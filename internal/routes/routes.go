// Package routes defines HTTP routes for the API service.
package routes

import (
	"github.com/Jerdirlson/api-task/internal/handlers"
	"github.com/Jerdirlson/api-task/internal/middleware"
	"github.com/Jerdirlson/api-task/internal/models"
	"github.com/Jerdirlson/api-task/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything Setup wires into the router.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Character *handlers.ResourceHandler[models.Character]
	Equipment *handlers.ResourceHandler[models.Equipment]
	Faction   *handlers.ResourceHandler[models.Faction]
}

// Setup configures all HTTP routes. Each resource group sits behind a
// role guard compared by exact equality.
func Setup(router *gin.Engine, h Handlers, tokens service.TokenService) {
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/login", h.Auth.Login)
	router.POST("/register", h.Auth.Register)
	router.GET("/user", middleware.RequireRole(tokens, models.RoleCharacters), h.Auth.CurrentUser)

	characters := router.Group("/characters", middleware.RequireRole(tokens, models.RoleCharacters))
	{
		characters.GET("", h.Character.Index)
		characters.POST("", h.Character.Store)
		characters.GET("/:id", h.Character.Show)
		characters.PUT("/:id", h.Character.Update)
		characters.DELETE("/:id", h.Character.Destroy)
	}

	equipment := router.Group("/equipment", middleware.RequireRole(tokens, models.RoleEquipment))
	{
		equipment.GET("", h.Equipment.Index)
		equipment.POST("", h.Equipment.Store)
		equipment.GET("/:id", h.Equipment.Show)
		equipment.PUT("/:id", h.Equipment.Update)
		equipment.DELETE("/:id", h.Equipment.Destroy)
	}

	factions := router.Group("/factions", middleware.RequireRole(tokens, models.RoleFactions))
	{
		factions.GET("", h.Faction.Index)
		factions.POST("", h.Faction.Store)
		factions.GET("/:id", h.Faction.Show)
		factions.PUT("/:id", h.Faction.Update)
		factions.DELETE("/:id", h.Faction.Destroy)
	}
}
