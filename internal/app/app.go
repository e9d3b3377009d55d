package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dyncarl8-oss/herbal-roots/internal/catalog"
	apiHTTP "github.com/dyncarl8-oss/herbal-roots/internal/controller/http"
	"github.com/dyncarl8-oss/herbal-roots/internal/repo/persistent"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/config"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"
	"github.com/dyncarl8-oss/herbal-roots/pkg/middleware"
	"github.com/dyncarl8-oss/herbal-roots/pkg/platform"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/dyncarl8-oss/herbal-roots/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	platformClient := platform.NewClient(cfg)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	transactionRepo := persistent.NewTransactionRepository(db)

	// Initialize use cases
	recommendUseCase := usecase.NewRecommendUseCase(catalog.Products(), log)
	communityUseCase := usecase.NewCommunityUseCase(postRepo, redisClient, log)
	commissionUseCase := usecase.NewCommissionUseCase(transactionRepo, userRepo, cfg.PlatformOperatorID, log)
	profileUseCase := usecase.NewProfileUseCase(userRepo, postRepo, log)

	// Initialize HTTP handlers
	authHandler := apiHTTP.NewAuthHandler(log)
	ritualHandler := apiHTTP.NewRitualHandler(recommendUseCase, log)
	profileHandler := apiHTTP.NewProfileHandler(profileUseCase, log)
	contentHandler := apiHTTP.NewContentHandler()
	communityHandler := apiHTTP.NewCommunityHandler(communityUseCase, log)
	commissionHandler := apiHTTP.NewCommissionHandler(commissionUseCase, platformClient, log)
	adminHandler := apiHTTP.NewAdminHandler(commissionUseCase, communityUseCase, profileUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware. The app renders inside the host platform's iframe,
	// so the platform origin must be allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", platform.UserTokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(apiHTTP.AuthMiddleware(platformClient, profileUseCase, log))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/auth/me", authHandler.Me)
		api.GET("/auth/check-access", authHandler.CheckAccess)

		api.GET("/rituals", ritualHandler.ListRituals)
		api.GET("/rituals/:id", ritualHandler.GetRitual)
		api.POST("/rituals/recommend", ritualHandler.Recommend)

		api.GET("/user/blends", profileHandler.ListBlends)
		api.POST("/user/blends", profileHandler.SaveBlend)
		api.GET("/dashboard/stats", profileHandler.DashboardStats)

		api.GET("/masterclasses", contentHandler.ListMasterclasses)
		api.GET("/masterclasses/:id", contentHandler.GetMasterclass)

		api.GET("/community/posts", communityHandler.ListPosts)
		api.POST("/community/posts", communityHandler.CreatePost)
		api.POST("/community/posts/:id/like", communityHandler.ToggleLike)
		api.POST("/community/posts/:id/replies", communityHandler.AddReply)

		api.POST("/checkout/create", commissionHandler.CreateCheckout)
		api.POST("/purchase/finalize", commissionHandler.FinalizePurchase)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	{
		admin.POST("/mock-purchase", adminHandler.MockPurchase)
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/transactions", adminHandler.ListTransactions)
		admin.GET("/users", adminHandler.ListUsers)
		admin.DELETE("/posts/:id", adminHandler.DeletePost)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Herbal Roots starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down Herbal Roots...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drain in-flight requests before closing the pools they depend on
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("Herbal Roots exited")
}
