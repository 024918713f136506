package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fromshel/ontaste-api/controllers"
	"github.com/Fromshel/ontaste-api/database"
	"github.com/Fromshel/ontaste-api/middleware"
	"github.com/Fromshel/ontaste-api/repository"
	"github.com/Fromshel/ontaste-api/routes"
	"github.com/Fromshel/ontaste-api/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- 1. External collaborators ---

	mongoClient, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// Redis is optional; the menu cache is disabled when unconfigured.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, menu cache disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	}

	// --- 2. Dependency Injection (wiring the layers together) ---

	menuRepo := repository.NewMongoMenuRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := menuRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure menu indexes", zap.Error(err))
	}
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure user indexes", zap.Error(err))
	}
	indexCancel()

	menuCache := services.NewMenuCache(redisClient)
	menuService := services.NewMenuService(menuRepo, menuCache, logger)
	authService := services.NewAuthService(userRepo, logger)
	orderService := services.NewOrderService(orderRepo, logger)

	menuController := controllers.NewMenuController(menuService)
	authController := controllers.NewAuthController(authService)
	orderController := controllers.NewOrderController(orderService)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestTimeout(15 * time.Second))

	routes.RegisterRoutes(r, menuController, authController, orderController)

	// --- 4. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Ontaste API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Ontaste API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}

	if err := database.Close(mongoClient); err != nil {
		zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zap.L().Info("Ontaste API stopped gracefully")
}
