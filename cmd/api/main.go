// Package main is the entry point for the API service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Jerdirlson/api-task/internal/cachestore"
	"github.com/Jerdirlson/api-task/internal/config"
	"github.com/Jerdirlson/api-task/internal/handlers"
	"github.com/Jerdirlson/api-task/internal/models"
	"github.com/Jerdirlson/api-task/internal/repository"
	"github.com/Jerdirlson/api-task/internal/routes"
	"github.com/Jerdirlson/api-task/internal/service"
	redisclient "github.com/Jerdirlson/api-task/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisClient, err := redisclient.NewClient(cfg)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	cache := cachestore.NewRedisCache(redisClient)

	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db, cache, cfg.CacheTTL, logger)
	equipmentRepo := repository.NewEquipmentRepository(db, cache, cfg.CacheTTL, logger)
	factionRepo := repository.NewFactionRepository(db, cache, cfg.CacheTTL, logger)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokenService)

	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Health:    handlers.NewHealthHandler(db, redisClient),
		Character: handlers.NewResourceHandler[models.Character]("character", "Character", characterRepo, logger),
		Equipment: handlers.NewResourceHandler[models.Equipment]("equipment", "Equipment", equipmentRepo, logger),
		Faction:   handlers.NewResourceHandler[models.Faction]("faction", "Faction", factionRepo, logger),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	routes.Setup(router, h, tokenService)

	logger.Info("starting api service", "port", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
