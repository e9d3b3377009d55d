package main

import (
	"github.com/dyncarl8-oss/herbal-roots/internal/app"
	"github.com/dyncarl8-oss/herbal-roots/pkg/cache"
	"github.com/dyncarl8-oss/herbal-roots/pkg/config"
	"github.com/dyncarl8-oss/herbal-roots/pkg/database"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"
)

// @title           Herbal Roots API
// @version         1.0
// @description     Membership backend for the Herbal Roots tea community: ritual recommendations, community feed, masterclasses and the operator commission ledger.

// @contact.name   API Support
// @contact.email  support@herbalroots.example

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey PlatformToken
// @in header
// @name x-platform-user-token
// @description User token injected by the host platform into the embedded app iframe.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	if cfg.PlatformAppSecret == "" {
		panic("PLATFORM_APP_SECRET must be set in environment variables")
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, redisClient)
}
