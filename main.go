package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhp131/beaute-project-BE/cache"
	"github.com/dhp131/beaute-project-BE/controllers"
	"github.com/dhp131/beaute-project-BE/database"
	"github.com/dhp131/beaute-project-BE/events"
	"github.com/dhp131/beaute-project-BE/logger"
	"github.com/dhp131/beaute-project-BE/middleware"
	"github.com/dhp131/beaute-project-BE/repository"
	"github.com/dhp131/beaute-project-BE/routes"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// --- MongoDB ---
	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(mongoClient); err != nil {
			log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	// --- Redis (optional) ---
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("Failed to parse REDIS_URL, catalog caching disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(opts)
			defer redisClient.Close()
		}
	}
	productCache := cache.NewProductCache(redisClient, log)

	// --- Kafka (optional) ---
	var publisher services.StatusPublisher
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer := events.NewOrderEventProducer(brokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
		log.Info("Order status events enabled", zap.Strings("brokers", brokers), zap.String("topic", cfg.KafkaTopic))
	}

	// --- Repositories ---
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	skinTypeRepo := repository.NewMongoSkinTypeRepository(db)
	quizResultRepo := repository.NewMongoQuizResultRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, log)
	productService := services.NewProductService(productRepo, skinTypeRepo, productCache, log)
	skinTypeService := services.NewSkinTypeService(skinTypeRepo, userRepo, quizResultRepo, log)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher, log)
	dashboardService := services.NewDashboardService(orderRepo, userRepo, productRepo, log)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(rate.Every(time.Minute/100), 50))
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Products:  controllers.NewProductController(productService),
		SkinTypes: controllers.NewSkinTypeController(skinTypeService),
		Orders:    controllers.NewOrderController(orderService),
		Dashboard: controllers.NewDashboardController(dashboardService),
	}, cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info("Backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Stopped gracefully")
}
