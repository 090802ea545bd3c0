package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "github.com/360Pawan/360Tube/internal/controller/http"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/internal/usecase"
	"github.com/360Pawan/360Tube/pkg/config"
	"github.com/360Pawan/360Tube/pkg/jwt"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/middleware"
	"github.com/360Pawan/360Tube/pkg/queue"
	"github.com/360Pawan/360Tube/pkg/response"
	"github.com/360Pawan/360Tube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/360Pawan/360Tube/docs" // Swagger docs
)

// Run wires the whole application together and blocks until the
// process receives SIGINT or SIGTERM. queueClient may be nil; mail
// delivery is then skipped.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	// Initialize use cases
	media := usecase.NewMediaService(s3Client, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, media, queueClient, log)
	userUseCase := usecase.NewUserUseCase(userRepo, media, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, likeRepo, media, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, redisClient, log)
	dashboardUseCase := usecase.NewDashboardUseCase(videoRepo, subscriptionRepo, log)

	// Initialize HTTP handlers
	userHandler := appHTTP.NewUserHandler(authUseCase, userUseCase, log)
	videoHandler := appHTTP.NewVideoHandler(videoUseCase, commentUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase)
	tweetHandler := appHTTP.NewTweetHandler(tweetUseCase)
	playlistHandler := appHTTP.NewPlaylistHandler(playlistUseCase)
	subscriptionHandler := appHTTP.NewSubscriptionHandler(subscriptionUseCase)
	likeHandler := appHTTP.NewLikeHandler(likeUseCase)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	api.GET("/healthcheck", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "OK", gin.H{"status": "healthy"})
	})

	// Public routes
	{
		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.POST("/users/refresh-token", userHandler.RefreshToken)
		api.GET("/users/verify-email", userHandler.VerifyEmail)
	}

	// Authenticated routes
	auth := api.Group("")
	auth.Use(appHTTP.AuthRequired(jwtService, userRepo))
	{
		auth.POST("/users/logout", userHandler.Logout)
		auth.POST("/users/change-password", userHandler.ChangePassword)
		auth.GET("/users/me", userHandler.CurrentUser)
		auth.PATCH("/users/me", userHandler.UpdateProfile)
		auth.PATCH("/users/avatar", userHandler.UpdateAvatar)
		auth.PATCH("/users/cover-image", userHandler.UpdateCoverImage)
		auth.GET("/users/c/:username", userHandler.ChannelProfile)
		auth.GET("/users/history", userHandler.WatchHistory)

		auth.POST("/videos", videoHandler.Publish)
		auth.GET("/videos", videoHandler.List)
		auth.GET("/videos/:id", videoHandler.Get)
		auth.PATCH("/videos/:id", videoHandler.Update)
		auth.DELETE("/videos/:id", videoHandler.Delete)
		auth.PATCH("/videos/:id/toggle-publish", videoHandler.TogglePublish)
		auth.GET("/videos/:id/comments", videoHandler.ListComments)
		auth.POST("/videos/:id/comments", videoHandler.AddComment)

		auth.PATCH("/comments/:id", commentHandler.Update)
		auth.DELETE("/comments/:id", commentHandler.Delete)

		auth.POST("/tweets", tweetHandler.Create)
		auth.GET("/tweets/user/:userId", tweetHandler.ListByUser)
		auth.PATCH("/tweets/:id", tweetHandler.Update)
		auth.DELETE("/tweets/:id", tweetHandler.Delete)

		auth.POST("/playlists", playlistHandler.Create)
		auth.GET("/playlists/:id", playlistHandler.Get)
		auth.GET("/playlists/user/:userId", playlistHandler.ListByUser)
		auth.PATCH("/playlists/:id", playlistHandler.Update)
		auth.DELETE("/playlists/:id", playlistHandler.Delete)
		auth.PATCH("/playlists/:id/videos/:videoId", playlistHandler.AddVideo)
		auth.DELETE("/playlists/:id/videos/:videoId", playlistHandler.RemoveVideo)

		auth.POST("/subscriptions/c/:channelId", subscriptionHandler.Toggle)
		auth.GET("/subscriptions/c/:channelId", subscriptionHandler.ListSubscribers)
		auth.GET("/subscriptions/u/:subscriberId", subscriptionHandler.ListSubscribedChannels)

		auth.POST("/likes/toggle/:kind/:id", likeHandler.Toggle)
		auth.GET("/likes/count/:kind/:id", likeHandler.Count)
		auth.GET("/likes/videos", likeHandler.LikedVideos)

		auth.GET("/dashboard/stats", dashboardHandler.Stats)
		auth.GET("/dashboard/videos", dashboardHandler.Videos)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

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

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
